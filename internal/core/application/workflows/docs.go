// Package workflows holds the interactive order flows as state machines.
//
// A flow is fed one input line at a time through Submit and never reads from a
// terminal itself. Prompt tells the caller what to ask for next, and the message
// returned by Submit is meant to be shown to the user as is. Invalid input never
// ends a flow: it produces a message and the flow stays in its current stage.
//
//	flow := workflows.NewCreateOrderFlow(pending)
//	for !flow.Done() {
//	    fmt.Print(flow.Prompt())
//	    line, ok := readLine()
//	    if !ok {
//	        break
//	    }
//	    if msg, _ := flow.Submit(line); msg != "" {
//	        fmt.Println(msg)
//	    }
//	}
//
// Flows work on in-memory lists only; persisting the outcome is left to the
// command handlers.
package workflows

import "errors"

// ErrFlowIsFinished is returned by Submit once a flow reached a terminal stage.
var ErrFlowIsFinished = errors.New("flow is finished")
