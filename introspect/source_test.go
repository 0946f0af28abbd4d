package introspect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctor-resolver/construct"
	"ctor-resolver/descriptor"
	"ctor-resolver/introspect"
	"ctor-resolver/resolve"
	"ctor-resolver/zoo"
)

func names(sigs []resolve.Signature) []string {
	res := make([]string, len(sigs))
	for i, s := range sigs {
		res[i] = s.String()
	}

	return res
}

func TestLoadSource(t *testing.T) {
	src, err := introspect.LoadSource("ctor-resolver/zoo")
	require.NoError(t, err)
	assert.Equal(t, []string{"ctor-resolver/zoo"}, src.Packages())

	tests := []struct {
		target string
		want   []string
	}{
		{"*zoo.Dog", []string{"NewDog(String)", "NewDogAged(String, int)", "NewDogWeighted(String, double)"}},
		{"*zoo.Cat", []string{"NewCat(String, byte)"}},
		{"*zoo.Puppy", []string{"NewPuppy(*zoo.Dog)"}},
		{"*zoo.Kennel", []string{"NewKennel(*zoo.Dog...)", "NewKennelLabeled(String, zoo.Animal...)"}},
		{"zoo.Tag", []string{"NewTag(String, long)"}},
		{"String", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			sigs, err := src.ListConstructors(descriptor.Reference(tt.target))
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(sigs))
		})
	}
}

func TestLoadSource_Lattice(t *testing.T) {
	src, err := introspect.LoadSource("ctor-resolver/zoo")
	require.NoError(t, err)

	l, err := src.Lattice()
	require.NoError(t, err)

	animal := descriptor.Reference("zoo.Animal")
	for _, name := range []string{"*zoo.Dog", "*zoo.Cat", "*zoo.Puppy"} {
		assert.True(t, l.AssignableTo(descriptor.Reference(name), animal), name)
	}
	assert.False(t, l.AssignableTo(descriptor.Reference("zoo.Tag"), animal))
}

// Declarations found in source match the ones registered at runtime, so the
// registry can invoke what the source lister resolved.
func TestLoadSource_AgreesWithRegistry(t *testing.T) {
	src, err := introspect.LoadSource("ctor-resolver/zoo")
	require.NoError(t, err)

	reg := introspect.NewRegistry().MustRegister(zoo.NewKennel, zoo.NewKennelLabeled)
	kennel := descriptor.Reference("*zoo.Kennel")

	fromSource, err := src.ListConstructors(kennel)
	require.NoError(t, err)
	fromRegistry, err := reg.ListConstructors(kennel)
	require.NoError(t, err)
	assert.Equal(t, fromRegistry, fromSource)

	l, err := src.Lattice()
	require.NoError(t, err)

	tom, err := zoo.NewCat("tom", 1)
	require.NoError(t, err)

	obj, err := construct.NewWithResolver(resolve.New(src, resolve.WithLattice(l)), reg, resolve.ModeMostSpecific,
		kennel, descriptor.Str("cats"), introspect.ValueOf(tom))
	require.NoError(t, err)
	assert.Equal(t, []zoo.Animal{tom}, obj.(*zoo.Kennel).Animals)
}

func TestLoadSource_Errors(t *testing.T) {
	_, err := introspect.LoadSource("ctor-resolver/does-not-exist")
	assert.Error(t, err)
}
