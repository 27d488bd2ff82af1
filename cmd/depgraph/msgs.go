package depgraph

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Inspect dependency exclusion filters"
	MsgCheckShort   = "Check coordinates against a set of exclude rules"
	MsgMergeShort   = "Combine two exclusion filters and compare them"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagExclude = "Exclude rule, group:module or group:module:artifact:type:ext ('*' wildcard, '~' regex prefix)"
	MsgFlagLeft    = "Exclude rule for the left filter (repeatable)"
	MsgFlagRight   = "Exclude rule for the right filter (repeatable)"

	// Verdict markers
	MsgAcceptedMark = "✓"
	MsgExcludedMark = "✗"
)

// Long messages
const (
	MsgRootLong = `depgraph inspects the exclusion filters a dependency-resolution engine
applies while walking a dependency graph. Build a filter from exclude
rules, query it with module or artifact coordinates, and combine
filters the way the resolver does when merging graph edges.`

	MsgCheckLong = `Check builds an exclusion filter from the given --exclude rules and
reports, for each coordinate argument, whether the filter accepts or
excludes it.

Coordinates are written group:module for module-level checks or
group:module:artifact:type:ext for artifact-level checks. Rule fields
use '*' for wildcard and a '~' prefix for regular expressions.`

	MsgMergeLong = `Merge builds two exclusion filters from the --left and --right rules,
prints their union (accept if either side accepts) and intersection
(accept if both sides accept), and reports whether the two inputs
exclude the same modules.`
)

// Embedded templates
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
