package scanner

import (
	"github.com/tszlabs/archlint/pkg/scanner/engine"
	"github.com/tszlabs/archlint/pkg/scanner/quarantine"
	"github.com/tszlabs/archlint/pkg/scanner/types"
	"github.com/tszlabs/archlint/pkg/scanner/verdict"
)

type Hit = types.Hit
type FailureGroup = types.FailureGroup
type Verdict = types.Verdict

var Run = engine.Run
var QuarantineScan = quarantine.Scan

var BuildVerdict = verdict.Build
var WriteVerdict = verdict.Write
var RenderVerdict = verdict.Render
