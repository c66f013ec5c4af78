// internal/app/content/load.go
package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/fedl/labsite/internal/domain/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Snapshot is the authored content before validation. It is what the YAML
// files, the Mongo collections and the export command exchange.
type Snapshot struct {
	Site         models.SiteSettings        `yaml:"site"`
	Profile      models.ProfessorProfile    `yaml:"profile"`
	Research     []models.ResearchArea      `yaml:"research"`
	Publications []models.PublicationPeriod `yaml:"publications"`
	Members      []models.Member            `yaml:"members"`
	Board        []models.BoardItem         `yaml:"board"`
}

// one file per content kind, each with a single top-level key
type siteFile struct {
	Site    models.SiteSettings     `yaml:"site"`
	Profile models.ProfessorProfile `yaml:"profile"`
}

type researchFile struct {
	Areas []models.ResearchArea `yaml:"areas"`
}

type publicationsFile struct {
	Periods []models.PublicationPeriod `yaml:"periods"`
}

type membersFile struct {
	Members []models.Member `yaml:"members"`
}

type boardFile struct {
	Items []models.BoardItem `yaml:"items"`
}

// LoadEmbedded reads the content compiled into the binary.
func LoadEmbedded() (Snapshot, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return Snapshot{}, err
	}
	return LoadFS(sub)
}

// LoadFS reads site.yaml, research.yaml, publications.yaml, members.yaml and
// board.yaml from the root of fsys.
func LoadFS(fsys fs.FS) (Snapshot, error) {
	var (
		snap Snapshot
		site siteFile
		res  researchFile
		pubs publicationsFile
		mems membersFile
		brd  boardFile
	)

	files := []struct {
		name string
		dst  any
	}{
		{"site.yaml", &site},
		{"research.yaml", &res},
		{"publications.yaml", &pubs},
		{"members.yaml", &mems},
		{"board.yaml", &brd},
	}
	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.dst); err != nil {
			return Snapshot{}, err
		}
	}

	snap.Site = site.Site
	snap.Profile = site.Profile
	snap.Research = res.Areas
	snap.Publications = pubs.Periods
	snap.Members = mems.Members
	snap.Board = brd.Items
	return snap, nil
}

func decodeFile(fsys fs.FS, name string, dst any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// ParseSnapshot decodes a single YAML document in the export layout.
func ParseSnapshot(b []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, nil
}

// MarshalSnapshot encodes snap as one YAML document with two-space indents.
func MarshalSnapshot(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
