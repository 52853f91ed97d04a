// Package shell routes input lines to command handlers and contains every
// failure at that boundary: a dispatched command always yields a renderable
// message, never an escaping error.
package shell

import (
	"fmt"

	"tabshell/internal/commands"
	"tabshell/internal/logger"
	"tabshell/internal/parser"
	"tabshell/internal/session"
)

// MsgUsePrefix is returned unchanged for any line that is not a command.
const MsgUsePrefix = "Commands start with '" + parser.Marker + "'. Type /help for available commands."

// Dispatch processes one input line against the session. Lines without the
// marker get the fixed help prompt; unknown commands get a message naming
// /help; a handler error or panic is rendered as "Error processing command".
// The session dataset is only replaced when a handler succeeds and returns a
// replacement; every turn is appended to the session transcript.
func Dispatch(line string, sess *session.Session) *commands.Result {
	result := dispatch(line, sess)
	sess.AppendTranscript(line, result.Message)
	return result
}

func dispatch(line string, sess *session.Session) *commands.Result {
	if !parser.IsCommand(line) {
		return &commands.Result{Message: MsgUsePrefix}
	}

	cmd, err := parser.ParseCommand(line)
	if err != nil {
		return &commands.Result{Message: MsgUsePrefix}
	}

	command, exists := commands.GetGlobalRegistry().Get(cmd.Name)
	if !exists {
		return &commands.Result{
			Message: fmt.Sprintf("Unknown command: %s%s. Type /help for available commands.", parser.Marker, cmd.Name),
		}
	}

	logger.CommandExecution(cmd.Name, cmd.Args)
	result, err := execute(command, cmd.Args, sess)
	if err != nil {
		logger.Error("Command failed", "command", cmd.Name, "error", err)
		return &commands.Result{Message: fmt.Sprintf("Error processing command: %v", err)}
	}

	if result.Dataset != nil {
		sess.Dataset = result.Dataset
	}
	return result
}

// execute invokes the handler and converts a panic into an error so that no
// failure crosses the dispatcher boundary.
func execute(command commands.Command, args []string, sess *session.Session) (result *commands.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	result, err = command.Execute(args, sess)
	if err == nil && result == nil {
		err = fmt.Errorf("command %s returned no result", command.Name())
	}
	return result, err
}
