package chainerr

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func requireInfo(t *testing.T, err error, want map[string]any) {
	t.Helper()

	got, infoErr := Info(err)
	require.NoError(t, infoErr)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Info() mismatch (-want +got):\n%s", diff)
	}
}

func TestInfo_NoInfo(t *testing.T) {
	err1 := stderrors.New("bad")
	err2 := Wrap(err1, "worse")

	require.Equal(t, "worse: bad", err2.Error())
	requireInfo(t, err2, map[string]any{})
	requireInfo(t, err1, map[string]any{})
}

func TestInfo_Inheritance(t *testing.T) {
	err1 := New("bad",
		WithName("MyError"),
		WithInfo(map[string]any{
			"errno":    "EDEADLK",
			"anobject": map[string]any{"hello": "world"},
		}),
	)
	require.Equal(t, "MyError", err1.Name())
	requireInfo(t, err1, map[string]any{
		"errno":    "EDEADLK",
		"anobject": map[string]any{"hello": "world"},
	})

	// Simple propagation
	err2 := Wrap(err1, "worse")
	require.Equal(t, "worse: bad", err2.Error())
	requireInfo(t, err2, map[string]any{
		"errno":    "EDEADLK",
		"anobject": map[string]any{"hello": "world"},
	})

	// One property override
	err2 = Wrap(err1, "worse", WithInfoValue("anobject", map[string]any{"hello": "moon"}))
	require.Equal(t, "worse: bad", err2.Error())
	requireInfo(t, err2, map[string]any{
		"errno":    "EDEADLK",
		"anobject": map[string]any{"hello": "moon"},
	})

	// Third level
	err3 := Wrap(err2, "what next",
		WithName("BigError"),
		WithInfoValue("remote_ip", "127.0.0.1"),
	)
	require.Equal(t, "BigError", err3.Name())
	require.Equal(t, "what next: worse: bad", err3.Error())

	info, err := Info(err3)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", info["remote_ip"])
	require.Equal(t, "EDEADLK", info["errno"])
	require.Equal(t, map[string]any{"hello": "moon"}, info["anobject"])
}

func TestInfo_ShallowestWins(t *testing.T) {
	e3 := New("e3", WithInfo(map[string]any{"a": 3, "b": 3, "c": 3}))
	e2 := Wrap(e3, "e2", WithInfo(map[string]any{"b": 2, "c": 2}))
	e1 := Wrap(e2, "e1", WithInfo(map[string]any{"c": 1}))

	requireInfo(t, e1, map[string]any{"a": 3, "b": 2, "c": 1})
	requireInfo(t, e2, map[string]any{"a": 3, "b": 2, "c": 2})
	requireInfo(t, e3, map[string]any{"a": 3, "b": 3, "c": 3})
}

func TestInfo_ThroughForeignWrappers(t *testing.T) {
	root := New("root", WithInfoValue("table", "users"))
	top := Wrap(fmt.Errorf("query: %w", root), "load failed", WithInfoValue("user_id", 42))

	requireInfo(t, top, map[string]any{"table": "users", "user_id": 42})
}

func TestInfo_SkippedCauseMessageStillInherits(t *testing.T) {
	root := New("root", WithInfoValue("k", "v"))
	top := Wrap(root, "top", SkipCauseMessage())

	requireInfo(t, top, map[string]any{"k": "v"})
}

func TestInfo_FreshMapEachCall(t *testing.T) {
	err := New("x", WithInfoValue("k", "v"))

	first, _ := Info(err)
	first["k"] = "changed"
	first["extra"] = true

	requireInfo(t, err, map[string]any{"k": "v"})
}

func TestInfo_NilError(t *testing.T) {
	info, err := Info(nil)
	require.Nil(t, info)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestError_InfoMethod(t *testing.T) {
	root := New("root", WithInfoValue("a", 1))
	top := Wrap(root, "top", WithInfoValue("b", 2))

	require.Equal(t, map[string]any{"a": 1, "b": 2}, top.Info())
	require.Equal(t, map[string]any{"b": 2}, top.OwnInfo())
}
