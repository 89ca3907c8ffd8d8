package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreCheckRejectsForcedPosAtIndex1WithCmd(t *testing.T) {
	os := NewOptionSet()
	os.Cmd(Config{Name: "serve"})
	force := true
	os.Pos(Config{Name: "p", Index: indexPtr(ForwardIndex(1)), Force: &force})

	err := preCheck(os)
	assert.Error(t, err)
}

func TestPreCheckAllowsPosAtOtherIndexWithCmd(t *testing.T) {
	os := NewOptionSet()
	os.Cmd(Config{Name: "serve"})
	force := true
	os.Pos(Config{Name: "p", Index: indexPtr(ForwardIndex(2)), Force: &force})

	assert.NoError(t, preCheck(os))
}

func TestCheckOptReportsMissingForcedOption(t *testing.T) {
	os := NewOptionSet()
	force := true
	os.String(Config{Name: "out", Force: &force})

	errs := checkOpt(os)
	assert.Len(t, errs, 1)
	var e ErrOptRequired
	assert.ErrorAs(t, errs[0], &e)
}

func TestCheckOptPassesWhenMatched(t *testing.T) {
	os := NewOptionSet()
	force := true
	opt, _ := os.String(Config{Name: "out", Force: &force})
	opt.matched = true

	assert.Empty(t, checkOpt(os))
}

func TestCheckPosFixedSlotGroupNeedsOneMatch(t *testing.T) {
	os := NewOptionSet()
	force := true
	a, _ := os.Pos(Config{Name: "a", Index: indexPtr(ForwardIndex(1)), Force: &force})
	os.Pos(Config{Name: "b", Index: indexPtr(ForwardIndex(1)), Force: &force})

	errs := checkPos(os)
	assert.Len(t, errs, 1)

	a.matched = true
	assert.Empty(t, checkPos(os))
}

func TestCheckPosFloatingSlotCheckedIndividually(t *testing.T) {
	os := NewOptionSet()
	force := true
	opt, _ := os.Pos(Config{Name: "rest", Index: indexPtr(AnyWhereIndex()), Force: &force})

	errs := checkPos(os)
	assert.Len(t, errs, 1)

	opt.matched = true
	assert.Empty(t, checkPos(os))
}

func TestCheckCmdRequiresOneMatchWhenDeclared(t *testing.T) {
	os := NewOptionSet()
	serve, _ := os.Cmd(Config{Name: "serve"})
	os.Cmd(Config{Name: "build"})

	errs := checkCmd(os)
	assert.Len(t, errs, 1)

	serve.matched = true
	assert.Empty(t, checkCmd(os))
}

func TestCheckCmdNoOpWhenNoneDeclared(t *testing.T) {
	os := NewOptionSet()
	assert.Empty(t, checkCmd(os))
}
