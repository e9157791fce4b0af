package memory

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"go-jobboard-backend/internal/domain"
)

//go:embed fixtures/seed.yaml
var defaultSeed []byte

// Seed is the initial content of the store.
type Seed struct {
	Users             []domain.User             `yaml:"users"`
	JobSeekerProfiles []domain.JobSeekerProfile `yaml:"jobSeekerProfiles"`
	EmployerProfiles  []domain.EmployerProfile  `yaml:"employerProfiles"`
	Jobs              []domain.Job              `yaml:"jobs"`
	Applications      []domain.Application      `yaml:"applications"`
}

// LoadSeed decodes a YAML seed document.
func LoadSeed(r io.Reader) (*Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &seed, nil
}

// LoadSeedFile reads a seed from path, or the embedded fixture when path is empty.
func LoadSeedFile(path string) (*Seed, error) {
	if path == "" {
		return DefaultSeed()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return LoadSeed(f)
}

// DefaultSeed returns the built-in demo data set.
func DefaultSeed() (*Seed, error) {
	return LoadSeed(bytes.NewReader(defaultSeed))
}

// SetPasswordHash gives every seeded user the same password hash.
func (s *Seed) SetPasswordHash(hash string) {
	for i := range s.Users {
		s.Users[i].PasswordHash = hash
	}
}
