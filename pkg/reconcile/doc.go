// Package reconcile walks the user through failing links one at a time.
//
// The decision logic is a pure state machine (Transition) over the list of
// failing record ids. A Session drives it: it asks a Prompter for an action
// on the current item, applies the resulting effect through a
// core.Workspace, and moves on. Every applied effect is persisted before the
// next item is shown, so an interrupted session keeps all earlier decisions.
package reconcile
