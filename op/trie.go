package op

import (
	"fmt"

	"github.com/whint-io/whint/token"
)

// Node is one state of the instruction decode tree. The root is the state
// before any token of an instruction has been read; each token read moves
// to a child until a node with a Code is reached.
type Node struct {
	children [3]*Node
	code     Code
}

var root = &Node{}

// Root returns the start state of the decode tree.
func Root() *Node {
	return root
}

func edge(t token.Token) int {
	switch t {
	case token.SPACE:
		return 0
	case token.TAB:
		return 1
	case token.LINEFEED:
		return 2
	default:
		return -1
	}
}

// Next returns the state reached by reading t, or nil if no instruction
// continues with t.
func (n *Node) Next(t token.Token) *Node {
	i := edge(t)
	if i < 0 {
		return nil
	}
	return n.children[i]
}

// Code returns the instruction selected by this state, or Invalid if more
// tokens are needed.
func (n *Node) Code() Code {
	return n.code
}

// Terminal reports whether this state selects an instruction.
func (n *Node) Terminal() bool {
	return n.code != Invalid
}

// Expected returns the tokens that continue an instruction from this state.
func (n *Node) Expected() []token.Token {
	var out []token.Token
	for _, t := range []token.Token{token.SPACE, token.TAB, token.LINEFEED} {
		if n.Next(t) != nil {
			out = append(out, t)
		}
	}
	return out
}

func (n *Node) insert(info Info) {
	cur := n
	for _, t := range info.Tokens {
		if cur.Terminal() {
			panic(fmt.Sprintf("op: %s is shadowed by %s", info.Name, cur.code))
		}
		i := edge(t)
		if cur.children[i] == nil {
			cur.children[i] = &Node{}
		}
		cur = cur.children[i]
	}
	if cur.Terminal() || cur.children != [3]*Node{} {
		panic(fmt.Sprintf("op: ambiguous token sequence for %s", info.Name))
	}
	cur.code = info.Code
}
