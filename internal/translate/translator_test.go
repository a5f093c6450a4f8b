package translate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"utb/internal/collector"
	"utb/internal/domain"
)

func TestTranslate_NoOutcomesMeansPass(t *testing.T) {
	scn := &domain.Scenario{Name: "Scenario_UserTest_TestCreate"}
	err := New(true).Translate(scn, collector.New())
	assert.NoError(t, err)
	assert.Nil(t, scn.ExpectedFailure)
	assert.Nil(t, scn.UnexpectedSuccess)
}

func TestTranslate_SingleExceptionSurfacesAsIs(t *testing.T) {
	scn := &domain.Scenario{}
	col := collector.New()
	boom := fmt.Errorf("boom")
	col.OnError(nil, boom)

	err := New(true).Translate(scn, col)
	assert.Same(t, boom, err)
}

func TestTranslate_MultipleExceptionsAggregate(t *testing.T) {
	scn := &domain.Scenario{}
	col := collector.New()
	first := fmt.Errorf("first")
	second := fmt.Errorf("second")
	col.OnFailure(nil, first)
	col.OnError(nil, second)

	err := New(true).Translate(scn, col)
	require.Error(t, err)

	leaves := multierr.Errors(err)
	require.Len(t, leaves, 2)
	assert.Same(t, first, leaves[0])
	assert.Same(t, second, leaves[1])
}

func TestTranslate_AggregationDisabledKeepsFirstOnly(t *testing.T) {
	scn := &domain.Scenario{}
	col := collector.New()
	first := fmt.Errorf("first")
	col.OnFailure(nil, first)
	col.OnError(nil, fmt.Errorf("second"))

	err := New(false).Translate(scn, col)
	assert.Same(t, first, err)
}

func TestTranslate_ExpectedFailureAnnotatesAndPasses(t *testing.T) {
	scn := &domain.Scenario{}
	col := collector.New()
	known := fmt.Errorf("known bug")
	col.OnExpectedFailure(nil, known)

	err := New(true).Translate(scn, col)
	assert.NoError(t, err)
	assert.Same(t, known, scn.ExpectedFailure)
}

func TestTranslate_UnexpectedSuccessFails(t *testing.T) {
	scn := &domain.Scenario{}
	col := collector.New()
	surprise := fmt.Errorf("UserTest.TestCreate passed, but expected to fail")
	col.OnUnexpectedSuccess(nil, surprise)

	err := New(true).Translate(scn, col)
	assert.Same(t, surprise, err)
	assert.Same(t, surprise, scn.UnexpectedSuccess)
}

func TestTranslate_ExceptionsWinOverBookkeeping(t *testing.T) {
	scn := &domain.Scenario{}
	col := collector.New()
	real := fmt.Errorf("real failure")
	col.OnFailure(nil, real)
	col.OnExpectedFailure(nil, fmt.Errorf("known bug"))
	col.OnUnexpectedSuccess(nil, fmt.Errorf("surprise"))

	err := New(true).Translate(scn, col)
	assert.Same(t, real, err)
	assert.Nil(t, scn.ExpectedFailure)
	assert.Nil(t, scn.UnexpectedSuccess)
}
