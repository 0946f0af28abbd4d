package zoo

import (
	"errors"
	"fmt"
)

// ErrTooManyLives is returned by NewCat for an impossible cat.
var ErrTooManyLives = errors.New("a cat has at most nine lives")

// 1. Animal is implemented by every inhabitant of the zoo.
type Animal interface {
	Name() string
	Sound() string
}

// 2. Dog is the common case: several constructors with overlapping arities.
type Dog struct {
	name   string
	Age    int32
	Weight float64
}

func NewDog(name string) *Dog {
	return &Dog{name: name}
}

func NewDogAged(name string, age int32) *Dog {
	return &Dog{name: name, Age: age}
}

func NewDogWeighted(name string, weight float64) *Dog {
	return &Dog{name: name, Weight: weight}
}

func (d *Dog) Name() string  { return d.name }
func (d *Dog) Sound() string { return "woof" }

// 3. Cat validates its input and reports an error.
type Cat struct {
	name  string
	Lives int8
}

func NewCat(name string, lives int8) (*Cat, error) {
	if lives > 9 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyLives, lives)
	}

	return &Cat{name: name, Lives: lives}, nil
}

func (c *Cat) Name() string  { return c.name }
func (c *Cat) Sound() string { return "meow" }

// 4. Puppy panics without a mother.
type Puppy struct {
	Mother *Dog
}

func NewPuppy(mother *Dog) *Puppy {
	if mother == nil {
		panic("zoo: a puppy needs a mother")
	}

	return &Puppy{Mother: mother}
}

func (p *Puppy) Name() string  { return p.Mother.Name() + " junior" }
func (p *Puppy) Sound() string { return "yip" }

// 5. Kennel takes a variable number of inhabitants.
type Kennel struct {
	Label   string
	Animals []Animal
}

func NewKennel(dogs ...*Dog) *Kennel {
	k := &Kennel{Label: "kennel"}
	for _, d := range dogs {
		k.Animals = append(k.Animals, d)
	}

	return k
}

func NewKennelLabeled(label string, animals ...Animal) *Kennel {
	return &Kennel{Label: label, Animals: animals}
}

// 6. Tag is declared as a plain value type with a counted constructor.
type Tag struct {
	Code  string
	Count int64
}

func NewTag(code string, count int64) Tag {
	return Tag{Code: code, Count: count}
}

// Helpers that are not constructors of anything.
func NewTagCode(prefix string) string { return prefix + "-tag" }
func newHidden() *Dog                 { return &Dog{} }
