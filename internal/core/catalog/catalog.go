// Package catalog manages pasta shapes and their recommended cooking
// times: a fixed set of built-in shapes plus user-defined custom shapes
// persisted through a Store.
package catalog

import (
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/aldente/internal/core/validate"
)

// Pasta describes one shape and its recommended cooking range in minutes.
type Pasta struct {
	Name       string
	MinTime    int
	MaxTime    int
	Custom     bool
	UsageCount int
	CreatedAt  time.Time
}

// TimeRange returns the recommended (min, max) cooking minutes.
func (p Pasta) TimeRange() (int, int) {
	return p.MinTime, p.MaxTime
}

// ValidTime reports whether minutes falls inside the recommended range.
func (p Pasta) ValidTime(minutes float64) bool {
	return minutes >= float64(p.MinTime) && minutes <= float64(p.MaxTime)
}

// builtIn is the fixed catalog of well-known shapes.
var builtIn = map[string]Pasta{
	"spaghetti":  {Name: "spaghetti", MinTime: 8, MaxTime: 10},
	"penne":      {Name: "penne", MinTime: 11, MaxTime: 13},
	"fusilli":    {Name: "fusilli", MinTime: 9, MaxTime: 11},
	"rigatoni":   {Name: "rigatoni", MinTime: 12, MaxTime: 14},
	"linguine":   {Name: "linguine", MinTime: 8, MaxTime: 10},
	"farfalle":   {Name: "farfalle", MinTime: 10, MaxTime: 12},
	"angel hair": {Name: "angel hair", MinTime: 3, MaxTime: 5},
	"fettuccine": {Name: "fettuccine", MinTime: 9, MaxTime: 11},
}

var funFacts = []string{
	"Did you know? The word 'pasta' comes from the Italian word for 'paste.'",
	"Tip: Always salt your pasta water for better flavor!",
	"Fact: There are over 600 shapes of pasta worldwide.",
	"Tip: Don't rinse your pasta after cooking; the starch helps sauce stick!",
	"Fact: Al dente means 'to the tooth' in Italian, describing pasta's ideal texture.",
	"Tip: Save a cup of pasta water to help thicken your sauce.",
	"Fact: Pasta was first referenced in Sicily in 1154.",
	"Tip: Stir pasta occasionally to prevent sticking.",
	"Fact: The average Italian eats 51 pounds of pasta per year!",
	"Tip: Pair pasta shapes with the right sauce for best results.",
}

// Catalog is the lookup service for pasta shapes. Custom shapes shadow
// built-in ones; all lookups are case-insensitive.
type Catalog struct {
	store Store
	log   zerolog.Logger

	mu     sync.Mutex
	custom map[string]Pasta
}

// New creates a Catalog backed by the given store. A load failure is
// logged and treated as an empty custom set rather than an error, so a
// corrupt file never blocks the timer itself.
func New(store Store, log zerolog.Logger) *Catalog {
	c := &Catalog{
		store:  store,
		log:    log,
		custom: make(map[string]Pasta),
	}

	custom, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("could not load custom pasta data")
		return c
	}
	c.custom = custom
	return c
}

// Get returns the pasta for name. Returns ErrNotFound if the shape is
// neither custom nor built-in.
func (c *Catalog) Get(name string) (Pasta, error) {
	lower := strings.ToLower(name)

	c.mu.Lock()
	p, ok := c.custom[lower]
	c.mu.Unlock()
	if ok {
		return p, nil
	}

	if p, ok := builtIn[lower]; ok {
		return p, nil
	}
	return Pasta{}, ErrNotFound
}

// All returns every shape, built-in and custom, sorted by name.
func (c *Catalog) All() []Pasta {
	all := c.BuiltIn()
	all = append(all, c.Custom()...)
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// BuiltIn returns the built-in shapes sorted by name.
func (c *Catalog) BuiltIn() []Pasta {
	out := make([]Pasta, 0, len(builtIn))
	for _, p := range builtIn {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Custom returns the custom shapes sorted by name.
func (c *Catalog) Custom() []Pasta {
	c.mu.Lock()
	out := make([]Pasta, 0, len(c.custom))
	for _, p := range c.custom {
		out = append(out, p)
	}
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the names of every shape.
func (c *Catalog) Names() []string {
	all := c.All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}

// AddCustom validates and persists a new custom shape.
func (c *Catalog) AddCustom(name string, minTime, maxTime int) error {
	if err := validate.CustomPasta(name, minTime, maxTime, c.Names()); err != nil {
		return err
	}

	p := Pasta{
		Name:      strings.TrimSpace(name),
		MinTime:   minTime,
		MaxTime:   maxTime,
		Custom:    true,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom[strings.ToLower(p.Name)] = p
	return c.store.Save(c.snapshotLocked())
}

// RemoveCustom deletes a custom shape. Returns false if name is not a
// custom shape.
func (c *Catalog) RemoveCustom(name string) (bool, error) {
	lower := strings.ToLower(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.custom[lower]; !ok {
		return false, nil
	}
	delete(c.custom, lower)
	return true, c.store.Save(c.snapshotLocked())
}

// IsCustom reports whether name refers to a custom shape.
func (c *Catalog) IsCustom(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.custom[strings.ToLower(name)]
	return ok
}

// CustomCount returns the number of custom shapes.
func (c *Catalog) CustomCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.custom)
}

// IncrementUsage bumps and persists the usage counter for a custom
// shape. Built-in shapes are untracked; the call is then a no-op.
func (c *Catalog) IncrementUsage(name string) error {
	lower := strings.ToLower(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.custom[lower]
	if !ok {
		return nil
	}
	p.UsageCount++
	c.custom[lower] = p
	return c.store.Save(c.snapshotLocked())
}

// RandomFact returns a random pasta fact or tip.
func (c *Catalog) RandomFact() string {
	return funFacts[rand.IntN(len(funFacts))]
}

func (c *Catalog) snapshotLocked() map[string]Pasta {
	out := make(map[string]Pasta, len(c.custom))
	for k, v := range c.custom {
		out[k] = v
	}
	return out
}
