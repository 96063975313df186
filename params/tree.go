// Package params implements the scheme's parameter generator: given an
// arithmetic expression tree describing the additions and multiplications a
// circuit will perform, and a target security level, it derives a
// complete, validated Settings (n, q, t, b, D).
package params

import "golang.org/x/exp/constraints"

// NodeType identifies what an arithmetic expression tree node computes.
type NodeType int

const (
	// Plus is a binary addition node.
	Plus NodeType = iota + 1
	// Multiply is a binary multiplication node.
	Multiply
	// Value is a leaf node holding a literal operand bound.
	Value
)

// Node is one node of the arithmetic expression tree the parameter
// generator walks. A leaf (Value) node carries M, an upper bound on the
// magnitude of the literal value it represents; an interior (Plus or
// Multiply) node carries Left and Right subtrees. Degree and InfNorm are
// filled in by estimatePoly as the tree is walked; they are meaningless
// before that.
type Node struct {
	Type  NodeType
	M     int
	Left  *Node
	Right *Node

	Degree  uint64
	InfNorm uint64
}

// NewValueNode returns a leaf node bounding a literal value's magnitude by m.
func NewValueNode(m int) *Node {
	return &Node{Type: Value, M: m}
}

// NewPlusNode returns an interior node computing left+right.
func NewPlusNode(left, right *Node) *Node {
	return &Node{Type: Plus, Left: left, Right: right}
}

// NewMultiplyNode returns an interior node computing left*right.
func NewMultiplyNode(left, right *Node) *Node {
	return &Node{Type: Multiply, Left: left, Right: right}
}

// maxLeafM returns the largest M carried by any leaf under node.
func maxLeafM(node *Node) int {
	if node == nil {
		return 0
	}
	if node.Type == Value {
		return node.M
	}
	return max2(maxLeafM(node.Left), maxLeafM(node.Right))
}

// intLog returns floor(log_base(value)), the Go analogue of the reference
// generator's int_log: how many base-b digits are needed below value.
func intLog(base, value int) int {
	if value <= 0 || base <= 1 {
		return 0
	}
	count := -1
	for v := value; v > 0; v /= base {
		count++
	}
	return count
}

// max2 and min2 are the generic comparison helpers every numeric ordering
// in this package is built from, using constraints.Ordered the same way the
// teacher's utils/structs package does for its own generic helpers.
func max2[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func min2[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// estimatePoly walks the tree bottom-up, filling in each node's Degree (the
// polynomial degree the subtree's result needs, once literals are encoded
// in base b) and InfNorm (a bound on its coefficients' magnitude).
//
// A leaf's degree is floor(log_b M), one less than the number of base-b
// digits its literal bound needs; an addition's degree is the larger of its
// operands', its infinity norm their sum; a multiplication's degree is the
// sum of its operands' (polynomial multiplication grows degree additively),
// its infinity norm twice the convolution length (the smaller operand
// degree plus one) times the product of the operands' norms.
func estimatePoly(node *Node, n int64, b int) {
	if node == nil {
		return
	}

	estimatePoly(node.Left, n, b)
	estimatePoly(node.Right, n, b)

	switch {
	case node.Left == nil && node.Right == nil:
		node.Degree = uint64(intLog(b, node.M))
		if node.M < b {
			node.InfNorm = uint64(node.M)
		} else {
			node.InfNorm = uint64(b - 1)
		}
	case node.Type == Plus:
		node.Degree = max2(node.Left.Degree, node.Right.Degree)
		node.InfNorm = node.Left.InfNorm + node.Right.InfNorm
	case node.Type == Multiply:
		node.Degree = node.Left.Degree + node.Right.Degree
		node.InfNorm = 2 * (min2(node.Left.Degree, node.Right.Degree) + 1) * node.Left.InfNorm * node.Right.InfNorm
	}
}

// computeD returns the arithmetic circuit's multiplicative depth measure:
// an addition takes the larger of its operands' values, and a
// multiplication counts one plus the values of both operands, so
// multiplications in both subtrees of a product are summed rather than
// only the longest chain being counted.
func computeD(node *Node) int {
	switch node.Type {
	case Plus:
		return max2(computeD(node.Left), computeD(node.Right))
	case Multiply:
		return 1 + computeD(node.Left) + computeD(node.Right)
	default:
		return 0
	}
}
