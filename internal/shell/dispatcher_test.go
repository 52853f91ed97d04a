package shell

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabshell/internal/auth"
	"tabshell/internal/commands"
	_ "tabshell/internal/commands/builtin"
	"tabshell/internal/dataset"
	"tabshell/internal/services"
	"tabshell/internal/session"
	"tabshell/internal/testutils"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New()
	ds, err := dataset.New([]string{"a", "b"}, [][]string{{"1", "2"}})
	require.NoError(t, err)
	sess.Dataset = ds
	return sess
}

func TestDispatch_NonCommandLine(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"plain text", "hello there"},
		{"empty line", ""},
		{"bare marker", "/"},
		{"marker mid-line", "say /help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newTestSession(t)
			before := sess.Dataset

			result := Dispatch(tt.line, sess)
			assert.Equal(t, MsgUsePrefix, result.Message)
			assert.Same(t, before, sess.Dataset)
		})
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	sess := newTestSession(t)
	result := Dispatch("/bogus arg1", sess)
	assert.Equal(t, "Unknown command: /bogus. Type /help for available commands.", result.Message)
}

func TestDispatch_CaseInsensitiveName(t *testing.T) {
	sess := newTestSession(t)
	result := Dispatch("/INFO", sess)
	assert.Contains(t, result.Message, "Dataset: 1 rows, 2 columns")
}

func TestDispatch_PreconditionMessage(t *testing.T) {
	sess := session.New()
	result := Dispatch("/describe", sess)
	assert.Equal(t, commands.MsgNoData, result.Message)
}

func TestDispatch_HandlerError(t *testing.T) {
	registerTestCommand(t, &failingCommand{err: errors.New("boom")})

	sess := newTestSession(t)
	result := Dispatch("/failing", sess)
	assert.Equal(t, "Error processing command: boom", result.Message)
}

func TestDispatch_HandlerPanic(t *testing.T) {
	registerTestCommand(t, &panickyCommand{})

	sess := newTestSession(t)
	before := sess.Dataset

	result := Dispatch("/panicky", sess)
	assert.Equal(t, "Error processing command: index out of range", result.Message)
	assert.Same(t, before, sess.Dataset)
}

func TestDispatch_NilResultGuard(t *testing.T) {
	registerTestCommand(t, &nilResultCommand{})

	sess := newTestSession(t)
	result := Dispatch("/nilresult", sess)
	assert.Equal(t, "Error processing command: command nilresult returned no result", result.Message)
}

func TestDispatch_ReplacesDatasetOnSuccessfulRead(t *testing.T) {
	fetched, err := dataset.New([]string{"x"}, [][]string{{"9"}})
	require.NoError(t, err)

	sess := newTestSession(t)
	sess.Credential = &auth.Credential{Token: "t"}
	sess.Sheets = &testutils.FakeSheets{ReadDataset: fetched}
	sess.Drive = &testutils.FakeDrive{}

	result := Dispatch("/read S1", sess)
	assert.Contains(t, result.Message, "Loaded 1 rows x 1 columns from spreadsheet S1")
	assert.Same(t, fetched, sess.Dataset)
}

func TestDispatch_KeepsDatasetOnFailedRead(t *testing.T) {
	sess := newTestSession(t)
	before := sess.Dataset
	sess.Credential = &auth.Credential{Token: "t"}
	sess.Sheets = &testutils.FakeSheets{ReadErr: errors.New("sheet not found")}
	sess.Drive = &testutils.FakeDrive{}

	result := Dispatch("/read S1", sess)
	assert.Equal(t, "Failed to read sheet: sheet not found", result.Message)
	assert.Same(t, before, sess.Dataset)
}

func TestDispatch_AppendsTranscriptEveryTurn(t *testing.T) {
	sess := newTestSession(t)

	Dispatch("not a command", sess)
	Dispatch("/bogus", sess)
	Dispatch("/info", sess)

	require.Len(t, sess.Transcript, 3)
	assert.Equal(t, "not a command", sess.Transcript[0].Input)
	assert.Equal(t, MsgUsePrefix, sess.Transcript[0].Reply)
	assert.Equal(t, "/bogus", sess.Transcript[1].Input)
	assert.Contains(t, sess.Transcript[2].Reply, "Dataset: 1 rows")
}

func TestDispatch_Help(t *testing.T) {
	old := services.GetGlobalRegistry()
	registry := services.NewRegistry()
	services.SetGlobalRegistry(registry)
	t.Cleanup(func() { services.SetGlobalRegistry(old) })

	helpService := services.NewHelpService()
	require.NoError(t, helpService.Initialize())
	require.NoError(t, registry.RegisterService(helpService))

	sess := session.New()
	result := Dispatch("/help", sess)

	lines := strings.Split(result.Message, "\n")
	assert.Len(t, lines, len(commands.GetGlobalRegistry().GetAll()))
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "/"), "line %q should start with the command marker", line)
	}
}

func registerTestCommand(t *testing.T, cmd commands.Command) {
	t.Helper()
	registry := commands.GetGlobalRegistry()
	if !registry.IsValidCommand(cmd.Name()) {
		require.NoError(t, registry.Register(cmd))
	}
}

type failingCommand struct {
	err error
}

func (c *failingCommand) Name() string        { return "failing" }
func (c *failingCommand) Description() string { return "always fails" }
func (c *failingCommand) Usage() string       { return "/failing" }

func (c *failingCommand) Execute(_ []string, _ *session.Session) (*commands.Result, error) {
	return nil, c.err
}

type panickyCommand struct{}

func (c *panickyCommand) Name() string        { return "panicky" }
func (c *panickyCommand) Description() string { return "always panics" }
func (c *panickyCommand) Usage() string       { return "/panicky" }

func (c *panickyCommand) Execute(_ []string, _ *session.Session) (*commands.Result, error) {
	panic("index out of range")
}

type nilResultCommand struct{}

func (c *nilResultCommand) Name() string        { return "nilresult" }
func (c *nilResultCommand) Description() string { return "returns nothing" }
func (c *nilResultCommand) Usage() string       { return "/nilresult" }

func (c *nilResultCommand) Execute(_ []string, _ *session.Session) (*commands.Result, error) {
	return nil, nil
}
