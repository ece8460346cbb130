package clinical

import (
	"fmt"
	"slices"
)

// MasteryRef gates a specialty on another specialty's mastery score.
type MasteryRef struct {
	Specialty string  `json:"specialty"`
	Threshold float64 `json:"threshold"`
}

// Requirement describes the gate for unlocking a specialty. Every field is
// optional; only fields that are present participate in the unlock check
// (zero means "not required"). A specialty with a nil Requirement is open
// from the start.
type Requirement struct {
	MinShifts          int         `json:"min_shifts,omitempty"`
	MinAccuracy        float64     `json:"min_accuracy,omitempty"`
	RequiredDifficulty string      `json:"required_difficulty,omitempty"`
	RequiredMastery    *MasteryRef `json:"required_mastery,omitempty"`
}

// Specialty is a named grouping of clinical topics with its own unlock gate.
type Specialty struct {
	Name        string       `json:"name"`
	Topics      []string     `json:"topics"`
	Requirement *Requirement `json:"requirement,omitempty"`
}

// Catalog holds the specialty and topic tables with precomputed indices.
// Specialties keep their table order; it determines next-unlock priority.
type Catalog struct {
	specialties []Specialty
	byName      map[string]*Specialty
	topicOwner  map[string]string
	topics      []string
}

// New constructs a catalog from a slice of specialties.
// The first specialty is the one unlocked at profile creation and must not
// carry a requirement. Topic names must be unique across specialties.
func New(specialties []Specialty) (*Catalog, error) {
	if len(specialties) == 0 {
		return nil, fmt.Errorf("catalog needs at least one specialty")
	}
	if specialties[0].Requirement != nil {
		return nil, fmt.Errorf("starting specialty %q must not have a requirement", specialties[0].Name)
	}

	c := &Catalog{
		specialties: specialties,
		byName:      make(map[string]*Specialty, len(specialties)),
		topicOwner:  make(map[string]string),
	}

	for i := range c.specialties {
		sp := &c.specialties[i]
		if sp.Name == "" {
			return nil, fmt.Errorf("specialty %d has no name", i)
		}
		if _, dup := c.byName[sp.Name]; dup {
			return nil, fmt.Errorf("duplicate specialty %q", sp.Name)
		}
		c.byName[sp.Name] = sp

		for _, topic := range sp.Topics {
			if owner, dup := c.topicOwner[topic]; dup {
				return nil, fmt.Errorf("topic %q appears in both %q and %q", topic, owner, sp.Name)
			}
			c.topicOwner[topic] = sp.Name
			c.topics = append(c.topics, topic)
		}

		if req := sp.Requirement; req != nil {
			if req.RequiredDifficulty != "" {
				if _, ok := ParseLevel(req.RequiredDifficulty); !ok {
					return nil, fmt.Errorf("specialty %q: unknown difficulty %q", sp.Name, req.RequiredDifficulty)
				}
			}
			if ref := req.RequiredMastery; ref != nil && ref.Specialty == sp.Name {
				return nil, fmt.Errorf("specialty %q: mastery requirement references itself", sp.Name)
			}
		}
	}

	// Mastery references must point at specialties that exist.
	for _, sp := range c.specialties {
		if sp.Requirement == nil || sp.Requirement.RequiredMastery == nil {
			continue
		}
		if _, ok := c.byName[sp.Requirement.RequiredMastery.Specialty]; !ok {
			return nil, fmt.Errorf("specialty %q: mastery requirement references unknown specialty %q",
				sp.Name, sp.Requirement.RequiredMastery.Specialty)
		}
	}

	return c, nil
}

// Specialties returns all specialties in table order.
func (c *Catalog) Specialties() []Specialty {
	return slices.Clone(c.specialties)
}

// Specialty returns a specialty by name.
func (c *Catalog) Specialty(name string) (Specialty, bool) {
	sp, ok := c.byName[name]
	if !ok {
		return Specialty{}, false
	}
	return *sp, true
}

// Topics returns every known topic in catalog order.
func (c *Catalog) Topics() []string {
	return slices.Clone(c.topics)
}

// TopicSpecialty returns the specialty owning a topic.
func (c *Catalog) TopicSpecialty(topic string) (string, bool) {
	owner, ok := c.topicOwner[topic]
	return owner, ok
}

// StartingSpecialty returns the specialty unlocked at profile creation.
func (c *Catalog) StartingSpecialty() string {
	return c.specialties[0].Name
}
