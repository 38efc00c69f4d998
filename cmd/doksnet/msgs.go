package doksnet

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort            = "Keep documentation and code in verifiable sync"
	MsgNewShort             = "Create a new link store"
	MsgAddShort             = "Link a documentation partition to a code partition"
	MsgEditShort            = "Change a link's partitions or description"
	MsgRemoveShort          = "Remove a link"
	MsgRemoveFailedShort    = "Remove every link that fails verification"
	MsgListShort            = "List all links"
	MsgListLong             = "List prints every link in the store, in the order they were added."
	MsgTestShort            = "Verify every link"
	MsgTestInteractiveShort = "Verify every link and fix the failing ones"
	MsgGenConfigShort       = "Print the default configuration"
	MsgTopicsShort          = "Display available documentation topics"
	MsgTopicsLong           = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort      = "Generate shell completion script"

	// Status messages
	MsgStoreCreated     = "Created %s"
	MsgDefaultDoc       = "Default documentation file: %s"
	MsgNoDefaultDoc     = "No default documentation file set."
	MsgLinkCreated      = "Link created"
	MsgLinkUpdated      = "Link updated"
	MsgLinkRemoved      = "Link removed"
	MsgAddCancelled     = "Nothing added."
	MsgRemovalDeclined  = "Nothing removed."
	MsgAllLinksPass     = "All links pass; nothing to review."
	MsgConfigWritten    = "Wrote %s"
	MsgOutcomeAccepted  = "Accepted %s"
	MsgOutcomeEdited    = "Updated %s"
	MsgOutcomeRemoved   = "Removed %s"
	MsgOutcomeSkipped   = "Skipped %s"
	MsgOutcomeFailed    = "Could not apply %s to %s: %s"
	MsgConfirmAdd       = "Create this link?"
	MsgChooseDefaultDoc = "Default documentation file"

	// Prompts
	MsgAskDoc         = "Documentation partition"
	MsgAskCode        = "Code partition"
	MsgAskDescription = "Description (optional)"

	// Preview labels
	MsgPreviewDoc  = "documentation"
	MsgPreviewCode = "code"

	// Error messages
	MsgErrNoCommand      = "no command specified"
	MsgErrNeedCode       = "a code partition is required (--code)"
	MsgErrNeedEditFlags  = "nothing to edit: pass --doc, --code or --description"
	MsgErrNeedYes        = "refusing to remove links without confirmation; pass --yes"
	MsgErrNotInteractive = "test-interactive needs a terminal"
	MsgErrWorkingDir     = "failed to determine working directory"
	MsgErrLinksFailed    = "%d of %d link(s) failed verification"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStore       = "Path to the .doks store (default: search upward from the current directory)"
	MsgFlagFormat      = "Output format: auto, term, text, json, junit"
	MsgFlagDefaultDoc  = "Default documentation file for the new store"
	MsgFlagDoc         = "Documentation partition, e.g. README.md:10-14"
	MsgFlagCode        = "Code partition, e.g. src/main.go:20-35@5-40"
	MsgFlagDescription = "Free-form description of the link"
	MsgFlagYes         = "Do not ask for confirmation"
	MsgFlagEffective   = "Print the configuration in effect instead of the defaults"
	MsgFlagWrite       = "Write the config to ./.doksnet.toml instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimRight(msgNewExampleRaw, "\n")

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/edit-long.txt
	msgEditLongRaw string
	MsgEditLong    = strings.TrimSpace(msgEditLongRaw)

	//go:embed msgs/edit-example.txt
	msgEditExampleRaw string
	MsgEditExample    = strings.TrimRight(msgEditExampleRaw, "\n")

	//go:embed msgs/remove-failed-long.txt
	msgRemoveFailedLongRaw string
	MsgRemoveFailedLong    = strings.TrimSpace(msgRemoveFailedLongRaw)

	//go:embed msgs/test-long.txt
	msgTestLongRaw string
	MsgTestLong    = strings.TrimSpace(msgTestLongRaw)

	//go:embed msgs/test-example.txt
	msgTestExampleRaw string
	MsgTestExample    = strings.TrimRight(msgTestExampleRaw, "\n")

	//go:embed msgs/test-interactive-long.txt
	msgTestInteractiveLongRaw string
	MsgTestInteractiveLong    = strings.TrimSpace(msgTestInteractiveLongRaw)

	//go:embed msgs/gen-config-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
