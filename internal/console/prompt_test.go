package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/testing/leaktest"
)

func TestPrompt_LineNormalises(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompt(strings.NewReader("  Move EAST \n"), out)
	defer p.Close()

	line, err := p.Line(context.Background(), "Go")
	require.NoError(t, err)
	assert.Equal(t, "move east", line)
	assert.Equal(t, "Go: ", out.String())

	_, err = p.Line(context.Background(), "Again")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompt_Quit(t *testing.T) {
	p := NewPrompt(strings.NewReader("Quit\n"), io.Discard)
	defer p.Close()

	_, err := p.Choose(context.Background(), "Pick", []string{"1"})
	assert.ErrorIs(t, err, ErrQuit)
}

func TestPrompt_ChooseIndexReprompts(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompt(strings.NewReader("0\nabc\n2\n"), out)
	defer p.Close()

	i, err := p.ChooseIndex(context.Background(), "Pick", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input. Please choose from: 1, 2, 3"))
}

func TestPrompt_CommandCompound(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompt(strings.NewReader("\njump\nitem 1 2\n"), out)
	defer p.Close()

	verb, args, err := p.Command(context.Background(), []command{
		{Name: CmdAttack, Args: []string{"1", "2"}},
		{Name: CmdItem, Args: []string{"1"}},
		{Name: CmdFlee},
	})
	require.NoError(t, err)
	assert.Equal(t, CmdItem, verb)
	assert.Equal(t, []string{"1", "2"}, args)
	assert.Contains(t, out.String(), "What would you like to do? (attack [1/2], item [1], flee)")
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid command. Please choose from: attack, item, flee"))
}

func TestPrompt_ContextCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewPrompt(r, io.Discard)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Line(ctx, "Waiting")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrompt_CloseStopsReader(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		p := NewPrompt(strings.NewReader("a\nb\nc\n"), io.Discard)
		_, err := p.Line(context.Background(), "First")
		require.NoError(t, err)
		p.Close()
		p.Close()
	})
}

func TestArgIndex(t *testing.T) {
	i, ok := argIndex([]string{"3"}, 0, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = argIndex([]string{"4"}, 0, 3)
	assert.False(t, ok)
	_, ok = argIndex([]string{"x"}, 0, 3)
	assert.False(t, ok)
	_, ok = argIndex(nil, 0, 3)
	assert.False(t, ok)
	_, ok = argIndex([]string{"1"}, 1, 3)
	assert.False(t, ok)
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"insufficient shards", domain.ErrInsufficientShards, MsgInsufficient},
		{"wrapped locked", errors.Join(errors.New("forge"), domain.ErrUpgradeLocked), MsgUpgradeLocked},
		{"maxed", domain.ErrUpgradeMaxed, MsgUpgradeMaxed},
		{"damage item", domain.ErrItemNotUsableHere, MsgDamageItemOnly},
		{"bad target", domain.ErrInvalidTarget, MsgInvalidTarget},
		{"bad item", domain.ErrInvalidItemIndex, MsgInvalidItem},
		{"no exit", domain.ErrNoExit, MsgNoExits},
		{"generic", errors.New("disk on fire"), "Something went wrong: disk on fire"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.err))
		})
	}
}
