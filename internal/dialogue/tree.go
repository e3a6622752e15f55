// Package dialogue loads NPC conversation trees and walks them.
package dialogue

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/validation"
)

// ErrInvalidTree is returned when a tree fails its reference checks.
var ErrInvalidTree = errors.New("invalid dialogue tree")

// Option is one player reply. Exactly one of NextNode and Action is set.
type Option struct {
	Text     string `yaml:"text" validate:"required"`
	NextNode string `yaml:"next_node,omitempty" validate:"required_without=Action,excluded_with=Action"`
	Action   string `yaml:"action,omitempty" validate:"required_without=NextNode"`
}

// Ends reports whether choosing the option closes the conversation.
func (o Option) Ends() bool {
	return o.Action == ActionEndDialogue
}

// Node is one NPC line and the replies it offers.
type Node struct {
	ID            string   `yaml:"-"`
	NPCText       string   `yaml:"npc_text" validate:"required"`
	PlayerOptions []Option `yaml:"player_options" validate:"required,min=1,dive"`
}

// Tree is a validated set of nodes.
type Tree struct {
	Version    string            `yaml:"version" validate:"required"`
	StartNodes map[string]string `yaml:"start_nodes" validate:"required"`
	Nodes      map[string]*Node  `yaml:"nodes" validate:"required,min=1,dive,required"`
}

// LoadTree reads, decodes and validates a dialogue file. Unknown keys are rejected.
func LoadTree(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFailed, err)
	}
	return ParseTree(data)
}

// ParseTree decodes and validates dialogue YAML.
func ParseTree(data []byte) (*Tree, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var tree Tree
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailed, err)
	}
	for id, node := range tree.Nodes {
		if node != nil {
			node.ID = id
		}
	}

	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return &tree, nil
}

// Validate checks struct tags and that every reference resolves.
func (t *Tree) Validate() error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTree, ErrMsgNoNodes)
	}
	if err := validation.Structs().Struct(t); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	for _, id := range t.NodeIDs() {
		for i, opt := range t.Nodes[id].PlayerOptions {
			if opt.NextNode != "" {
				if _, ok := t.Nodes[opt.NextNode]; !ok {
					return fmt.Errorf("%w: "+ErrMsgUnknownNode, ErrInvalidTree, i+1, id, opt.NextNode)
				}
				continue
			}
			if !opt.Ends() {
				return fmt.Errorf("%w: "+ErrMsgUnknownAction, ErrInvalidTree, i+1, id, opt.Action)
			}
		}
	}

	for npc, start := range t.StartNodes {
		if _, ok := t.Nodes[start]; !ok {
			return fmt.Errorf("%w: "+ErrMsgUnknownStart, ErrInvalidTree, start, npc)
		}
	}
	return nil
}

// Node returns the node with id.
func (t *Tree) Node(id string) (*Node, error) {
	n, ok := t.Nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDialogueNodeNotFound, id)
	}
	return n, nil
}

// StartNode returns the opening node for npc.
func (t *Tree) StartNode(npc string) (string, error) {
	id, ok := t.StartNodes[npc]
	if !ok {
		return "", fmt.Errorf("%w: "+ErrMsgUnknownNPC, domain.ErrDialogueNodeNotFound, npc)
	}
	return id, nil
}

// NodeIDs returns node IDs in sorted order.
func (t *Tree) NodeIDs() []string {
	ids := make([]string, 0, len(t.Nodes))
	for id := range t.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
