// Package shell is a line-oriented word scramble host. The terminal binary
// feeds it lines from readline; tests feed it strings.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/alert"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/scramble"
)

const usage = `Type a word made from the root word's letters to score it.
Commands:
  :new     draw a new root word (keeps your score)
  :reset   clear your words and score
  :score   show your score
  :used    list the words you have found
  :help    show this help
  :quit    leave (also "exit")`

type Options struct {
	Fallback string           // root used when no root can be drawn
	Reset    game.ResetPolicy // what :reset does with the root
}

// Controller owns one session and reports to out.
type Controller struct {
	sess *game.Session
	out  io.Writer
	opts Options
}

func NewController(sess *game.Session, out io.Writer, opts Options) *Controller {
	return &Controller{sess: sess, out: out, opts: opts}
}

// Begin starts the session, falling back to opts.Fallback when no root can
// be drawn.
func (c *Controller) Begin() error {
	if err := c.sess.Start(); err != nil {
		log.Warn().Err(err).Str("fallback", c.opts.Fallback).Msg("root word unavailable; using fallback")
		if err := c.sess.StartWith(c.opts.Fallback); err != nil {
			return err
		}
	}
	c.printf("Your root word is %q.", c.sess.Root)
	return nil
}

// Prompt shows the root word and score.
func (c *Controller) Prompt() string {
	return fmt.Sprintf("%s [%d]> ", c.sess.Root, c.sess.Score)
}

// Handle processes one input line. It returns true when the user wants to quit.
func (c *Controller) Handle(line string) bool {
	cmd := strings.TrimSpace(line)
	switch cmd {
	case ":quit", "exit":
		c.printf("Final score: %d", c.sess.Score)
		return true
	case ":help":
		c.printf("%s", usage)
	case ":score":
		c.printf("Score: %d (%d words)", c.sess.Score, len(c.sess.Used))
	case ":used":
		if len(c.sess.Used) == 0 {
			c.printf("No words yet.")
		}
		for _, w := range c.sess.Used {
			c.printf("  %-12s %d letters", w, len([]rune(w)))
		}
	case ":new":
		if err := c.sess.Start(); err != nil {
			c.printf("Could not draw a new root word: %v", err)
			return false
		}
		c.printf("Your root word is %q.", c.sess.Root)
	case ":reset":
		if err := c.sess.Reset(c.opts.Reset); err != nil {
			log.Warn().Err(err).Msg("redraw on reset failed; keeping root")
		}
		c.printf("Score reset. Root word is %q.", c.sess.Root)
	default:
		c.submit(line)
	}
	return false
}

func (c *Controller) submit(line string) {
	res, err := c.sess.Submit(line)
	if err != nil {
		c.printf("%v", err)
		return
	}
	switch res.Outcome {
	case scramble.Accepted:
		c.printf("+%d  %s  (score %d)", res.Score, res.Word, c.sess.Score)
	case scramble.Rejected:
		a := alert.For(res.Reason, c.sess.Root)
		c.printf("%s: %s", a.Title, a.Message)
	}
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}
