package dialogue

import (
	"context"
	"fmt"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/logger"
)

// Conversation walks a tree one choice at a time.
type Conversation struct {
	tree    *Tree
	current *Node
	path    []string
}

// NewConversation creates an idle conversation over tree.
func NewConversation(tree *Tree) *Conversation {
	return &Conversation{tree: tree}
}

// Start opens the conversation at nodeID.
func (c *Conversation) Start(nodeID string) (*Node, error) {
	node, err := c.tree.Node(nodeID)
	if err != nil {
		return nil, err
	}
	c.current = node
	c.path = []string{nodeID}
	return node, nil
}

// StartWith opens the conversation at npc's start node.
func (c *Conversation) StartWith(npc string) (*Node, error) {
	id, err := c.tree.StartNode(npc)
	if err != nil {
		return nil, err
	}
	return c.Start(id)
}

// Current returns the node being shown, or nil once the conversation ended.
func (c *Conversation) Current() *Node {
	return c.current
}

// Active reports whether a node is being shown.
func (c *Conversation) Active() bool {
	return c.current != nil
}

// Path returns the node IDs visited so far.
func (c *Conversation) Path() []string {
	return c.path
}

// Choose picks the zero-based option index on the current node. It returns
// the next node, or nil when the option ends the conversation.
func (c *Conversation) Choose(ctx context.Context, index int) (*Node, error) {
	if c.current == nil {
		return nil, domain.ErrDialogueEnded
	}
	if index < 0 || index >= len(c.current.PlayerOptions) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidChoice, index+1)
	}

	opt := c.current.PlayerOptions[index]
	if opt.Ends() {
		logger.FromContext(ctx).Debug(LogMsgConversationEnded, "path", c.path)
		c.current = nil
		return nil, nil
	}

	next, err := c.tree.Node(opt.NextNode)
	if err != nil {
		return nil, err
	}
	c.current = next
	c.path = append(c.path, next.ID)
	return next, nil
}
