// SPDX-License-Identifier: MIT

// Package netfile decodes YAML network descriptions into network.Network
// values. It is an input collaborator for tools such as the bayesnet CLI; the
// network package itself has no file format.
//
// A document lists nodes in any order. Unconditioned nodes give a flat
// probabilities vector; conditioned nodes give one table row per parent-value
// combination, with given values in parent order:
//
//	name: sprinkler
//	nodes:
//	  - name: Rain
//	    levels: ["T", "F"]
//	    probabilities: [0.2, 0.8]
//	  - name: WetGrass
//	    parents: [Rain]
//	    levels: ["T", "F"]
//	    table:
//	      - given: ["T"]
//	        probabilities: [0.9, 0.1]
//	      - given: ["F"]
//	        probabilities: [0.1, 0.9]
//	evidence:
//	  WetGrass: "T"
//
// Decoding checks the document shape only. Whether tables are complete and
// parents exist is left to network.Network.Validate or to query time.
package netfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bayesnet/cpt"
	"github.com/katalvlaran/bayesnet/network"
)

// Sentinel errors for document decoding.
var (
	// ErrInvalidDocument indicates a document that fails struct validation.
	ErrInvalidDocument = errors.New("netfile: invalid document")

	// ErrTableShape indicates a node with both or neither of probabilities and table,
	// or a table on a node without parents.
	ErrTableShape = errors.New("netfile: node needs exactly one of probabilities or table")

	// ErrArity indicates a table row whose given values do not match the parents.
	ErrArity = errors.New("netfile: given values do not match parents")

	// ErrDuplicateRow indicates two table rows with the same given values.
	ErrDuplicateRow = errors.New("netfile: duplicate table row")
)

var validate = validator.New()

// Document is the YAML form of a network.
type Document struct {
	Name     string            `yaml:"name" validate:"required"`
	Nodes    []NodeSpec        `yaml:"nodes" validate:"required,min=1,dive"`
	Evidence map[string]string `yaml:"evidence"`
}

// NodeSpec describes one node.
type NodeSpec struct {
	Name          string    `yaml:"name" validate:"required"`
	Parents       []string  `yaml:"parents" validate:"omitempty,unique,dive,required"`
	Levels        []string  `yaml:"levels" validate:"required,min=1,unique,dive,required"`
	Probabilities []float64 `yaml:"probabilities" validate:"omitempty,dive,gte=0"`
	Table         []RowSpec `yaml:"table" validate:"omitempty,dive"`
	Normalize     bool      `yaml:"normalize"`
}

// RowSpec is one conditional row: the parent values and the probability vector.
type RowSpec struct {
	Given         []string  `yaml:"given" validate:"required,min=1"`
	Probabilities []float64 `yaml:"probabilities" validate:"required,min=1,dive,gte=0"`
}

// Load reads and decodes the document at path.
func Load(path string, opts ...network.Option) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("netfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, opts...)
}

// Decode parses a YAML document from r and builds the network it describes.
// Unknown fields are rejected. opts are passed to network.New.
func Decode(r io.Reader, opts ...network.Option) (*network.Network, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("netfile: decode: %w", err)
	}

	return doc.Build(opts...)
}

// Build validates d and turns it into a network with d.Evidence staged.
func (d *Document) Build(opts ...network.Option) (*network.Network, error) {
	if err := validate.Struct(d); err != nil {
		return nil, formatValidationError(err)
	}

	nodes := make([]*network.Node, 0, len(d.Nodes))
	for i := range d.Nodes {
		nd, err := d.Nodes[i].node()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, nd)
	}

	n, err := network.Build(d.Name, nodes, opts...)
	if err != nil {
		return nil, err
	}
	if len(d.Evidence) > 0 {
		n.SetEvidence(d.Evidence)
	}

	return n, nil
}

// node converts one spec into a network node.
func (s *NodeSpec) node() (*network.Node, error) {
	hasFlat, hasTable := len(s.Probabilities) > 0, len(s.Table) > 0
	if hasFlat == hasTable || (hasTable && len(s.Parents) == 0) {
		return nil, fmt.Errorf("%w: node %q", ErrTableShape, s.Name)
	}

	var table *cpt.CPT
	if hasFlat {
		table = cpt.Unconditioned(s.Levels, s.Probabilities)
	} else {
		rows := make(map[cpt.Key][]float64, len(s.Table))
		for _, row := range s.Table {
			if len(row.Given) != len(s.Parents) {
				return nil, fmt.Errorf("%w: node %q row %v has %d values for %d parents",
					ErrArity, s.Name, row.Given, len(row.Given), len(s.Parents))
			}
			key := cpt.KeyOf(row.Given...)
			if _, dup := rows[key]; dup {
				return nil, fmt.Errorf("%w: node %q row %s", ErrDuplicateRow, s.Name, key)
			}
			rows[key] = row.Probabilities
		}
		table = cpt.New(s.Levels, rows)
	}

	if s.Normalize {
		if err := table.Normalize(); err != nil {
			return nil, fmt.Errorf("netfile: node %q: %w", s.Name, err)
		}
	}

	nd := network.NewNode(s.Name, s.Parents)
	nd.SetCPT(table)

	return nd, nil
}

// formatValidationError reports the first failed field in a readable form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	e := verrs[0]

	return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidDocument, e.Namespace(), e.Tag(), e.Value())
}
