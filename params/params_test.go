package params_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plwe-she/she/params"
)

func TestComputeDMatchesMultiplicativeDepth(t *testing.T) {
	leaf := params.NewValueNode(5)
	sum := params.NewPlusNode(params.NewValueNode(2), params.NewValueNode(3))
	require.NotNil(t, leaf)
	require.NotNil(t, sum)

	mul := params.NewMultiplyNode(params.NewValueNode(3), params.NewValueNode(5))
	chained := params.NewMultiplyNode(mul, params.NewValueNode(7))

	// (3*5)*7 contains two multiplications, so D = 2 + 2.
	settings, err := params.GenerateParameters(chained, -1000000, 4)
	require.NoError(t, err)
	require.Equal(t, 4, settings.D())
}

func TestGenerateParametersReturnsValidSettings(t *testing.T) {
	tree := params.NewPlusNode(params.NewValueNode(42), params.NewValueNode(17))

	settings, err := params.GenerateParameters(tree, -1000000, 4)
	require.NoError(t, err)
	require.Equal(t, 0, settings.Check())
	require.True(t, settings.D() >= 2)
}

func TestGenerateParametersRejectsEmptyTree(t *testing.T) {
	tree := params.NewValueNode(0)

	_, err := params.GenerateParameters(tree, -1000000, 4)
	require.Error(t, err)
}

func TestGenerateParametersWithMultiplication(t *testing.T) {
	tree := params.NewMultiplyNode(params.NewValueNode(6), params.NewValueNode(7))

	settings, err := params.GenerateParameters(tree, -1000000, 4)
	require.NoError(t, err)
	require.Equal(t, 0, settings.Check())
	require.Equal(t, 3, settings.D())
}
