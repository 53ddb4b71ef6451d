package hir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sable/report"
)

func TestArenaIdsAreDenseFromOne(t *testing.T) {
	var arena Arena[int]

	require.Equal(t, uint32(1), arena.Alloc(10))
	require.Equal(t, uint32(2), arena.Alloc(20))
	require.Equal(t, uint32(3), arena.Alloc(30))
	require.Equal(t, 3, arena.Len())

	require.Equal(t, 20, arena.Get(2))

	require.False(t, arena.Valid(0))
	require.True(t, arena.Valid(3))
	require.False(t, arena.Valid(4))
}

func TestArenaGetPanicsOnDanglingID(t *testing.T) {
	var arena Arena[int]
	arena.Alloc(10)

	defer func() {
		recovered := recover()
		ie, ok := recovered.(*report.InternalError)
		require.True(t, ok, "expected internal error, got %v", recovered)
		require.Contains(t, ie.Message, "dangling id 5")
	}()

	arena.Get(5)
	t.Fatal("expected panic")
}

func TestArenaEachVisitsInAllocationOrder(t *testing.T) {
	var arena Arena[string]
	arena.Alloc("a")
	arena.Alloc("b")

	var ids []uint32
	var values []string
	arena.Each(func(id uint32, v string) {
		ids = append(ids, id)
		values = append(values, v)
	})

	require.Equal(t, []uint32{1, 2}, ids)
	require.Equal(t, []string{"a", "b"}, values)
}

func TestBodyValidateAcceptsWellFormedTree(t *testing.T) {
	body := NewBody()

	cond := body.AddExpr(&LiteralExpr{Kind: LitBool, Value: "true"})
	then := body.AddExpr(&BlockExpr{})
	body.Root = body.AddExpr(&IfExpr{Cond: cond, Then: then})

	require.NoError(t, body.Validate())
}

func TestBodyValidateRejectsDanglingID(t *testing.T) {
	body := NewBody()

	cond := body.AddExpr(&LiteralExpr{Kind: LitBool, Value: "true"})
	body.Root = body.AddExpr(&IfExpr{Cond: cond, Then: ExprID(99)})

	require.EqualError(t, body.Validate(), "dangling expression id 99")
}

func TestBodyValidateChecksParams(t *testing.T) {
	body := NewBody()
	body.Root = body.AddExpr(&BlockExpr{})
	body.Params = []PatID{PatID(7)}

	require.EqualError(t, body.Validate(), "dangling pattern id 7")
}

func TestNewBindingMode(t *testing.T) {
	require.Equal(t, BindValue, NewBindingMode(false, false))
	require.Equal(t, BindMut, NewBindingMode(true, false))
	require.Equal(t, BindRef, NewBindingMode(false, true))
	require.Equal(t, BindRefMut, NewBindingMode(true, true))
}

func TestSentinelIDsAreInvalid(t *testing.T) {
	require.False(t, NoExpr.IsValid())
	require.False(t, NoPat.IsValid())
	require.True(t, ExprID(1).IsValid())
	require.True(t, PatID(1).IsValid())
}
