package bridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"utb/internal/config"
	"utb/internal/domain"
	"utb/internal/host"
	"utb/xunit"
)

type InventoryTest struct {
	xunit.TestCase
}

func (c *InventoryTest) TestAddItem(t *xunit.T) { t.AssertTrue(true) }
func (c *InventoryTest) TestRemoveItem(t *xunit.T) { t.Fatal("off-by-one in remove") }

type CheckoutTest struct {
	xunit.TestCase
}

func (c *CheckoutTest) SetUpClass() error { return nil }
func (c *CheckoutTest) TestCharge(t *xunit.T) {}
func (c *CheckoutTest) TestReceipt(t *xunit.T) {}

func quietConfig() *config.Config {
	cfg := config.New()
	cfg.NoColor = true
	return cfg
}

func newTestRegistry(t *testing.T) *host.ModuleRegistry {
	t.Helper()
	registry := host.NewModuleRegistry()

	inventory := xunit.NewModule("tests.inventory", "/app/tests/inventory_test.go")
	inventory.Add(&InventoryTest{})
	require.NoError(t, registry.Register(inventory))

	checkout := xunit.NewModule("tests.checkout", "/app/tests/checkout_test.go")
	checkout.Add(&CheckoutTest{})
	require.NoError(t, registry.Register(checkout))

	return registry
}

func TestSession_DiscoverGroupsByModuleInOrder(t *testing.T) {
	session := NewSession(quietConfig(), newTestRegistry(t))

	groups, err := session.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "/app/tests/inventory_test.go", groups[0].Path)
	require.Len(t, groups[0].Scenarios, 2)
	assert.Equal(t, "Scenario_InventoryTest_TestAddItem", groups[0].Scenarios[0].Name)

	// CheckoutTest carries a class hook, so it collapses.
	assert.Equal(t, "/app/tests/checkout_test.go", groups[1].Path)
	require.Len(t, groups[1].Scenarios, 1)
	assert.Equal(t, "Scenario_CheckoutTest", groups[1].Scenarios[0].Name)
	assert.Equal(t, domain.PerClass, groups[1].Scenarios[0].Granularity)
}

func TestSession_DiscoverHonorsNameFilter(t *testing.T) {
	cfg := quietConfig()
	cfg.NameFilter = "*Checkout*"
	session := NewSession(cfg, newTestRegistry(t))

	groups, err := session.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Scenario_CheckoutTest", groups[0].Scenarios[0].Name)
}

func TestSession_RunProducesReport(t *testing.T) {
	session := NewSession(quietConfig(), newTestRegistry(t))

	report, err := session.Run(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.NotEmpty(t, report.RunID)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Skipped)

	failures := report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "Scenario_InventoryTest_TestRemoveItem", failures[0].Scenario.Name)
	require.Error(t, failures[0].Err)
	assert.Contains(t, failures[0].Err.Error(), "off-by-one in remove")
}

type FlakyTest struct {
	xunit.TestCase
}

func (c *FlakyTest) TestKnownBug(t *xunit.T) { t.Fatal("still broken") }

func TestSession_ExpectedFailureAnnotatedInReport(t *testing.T) {
	registry := host.NewModuleRegistry()
	m := xunit.NewModule("tests.flaky", "/app/tests/flaky_test.go")
	m.Add(&FlakyTest{}).ExpectFailure("TestKnownBug")
	require.NoError(t, registry.Register(m))

	session := NewSession(quietConfig(), registry)
	report, err := session.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Passed)
	require.Len(t, report.Results, 1)
	details := report.Results[0].ExtraDetails()
	require.Len(t, details, 1)
	assert.Contains(t, details[0], "Expected Failure")
	assert.Contains(t, details[0], "still broken")
}

type RetiredTest struct {
	xunit.TestCase
}

func (c *RetiredTest) TestOld(t *xunit.T) {}

func TestSession_BuildTimeSkipsCounted(t *testing.T) {
	registry := host.NewModuleRegistry()
	m := xunit.NewModule("tests.retired", "/app/tests/retired_test.go")
	m.Add(&RetiredTest{}).Skip("superseded by scenarios")
	require.NoError(t, registry.Register(m))

	session := NewSession(quietConfig(), registry)
	report, err := session.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, "superseded by scenarios", report.Results[0].SkipReason)
}

type BillingTest struct {
	xunit.TestCase
}

func (c *BillingTest) TestRefund(t *xunit.T) { t.Skip("refunds move to scenarios") }

// A skip raised while the body runs reports as a failure, unlike a
// build-time marker; only the marker path produces skipped scenarios.
func TestSession_RuntimeSkipReportsFailed(t *testing.T) {
	registry := host.NewModuleRegistry()
	m := xunit.NewModule("tests.billing", "/app/tests/billing_test.go")
	m.Add(&BillingTest{})
	require.NoError(t, registry.Register(m))

	session := NewSession(quietConfig(), registry)
	report, err := session.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Skipped)
	require.Len(t, report.Failures(), 1)
	assert.Contains(t, report.Failures()[0].Err.Error(), "refunds move to scenarios")
}

type LedgerTest struct {
	xunit.TestCase
}

func (c *LedgerTest) SetUpClass() error { return nil }
func (c *LedgerTest) TestBalance(t *xunit.T) {}
func (c *LedgerTest) TestStatement(t *xunit.T) {}

func TestSession_PartiallySkippedClassReportsFailed(t *testing.T) {
	registry := host.NewModuleRegistry()
	m := xunit.NewModule("tests.ledger", "/app/tests/ledger_test.go")
	m.Add(&LedgerTest{}).SkipMethod("TestBalance", "pending rewrite")
	require.NoError(t, registry.Register(m))

	session := NewSession(quietConfig(), registry)

	// The class hook collapses the case into one scenario, and the
	// skipped method inside it surfaces as that scenario's failure.
	groups, err := session.Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Scenarios, 1)
	assert.False(t, groups[0].Scenarios[0].Skipped)

	report, err := session.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Skipped)
	assert.Contains(t, report.Failures()[0].Err.Error(), "pending rewrite")
}

func TestSession_CancelledRunReturnsError(t *testing.T) {
	session := NewSession(quietConfig(), newTestRegistry(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := session.Run(ctx, nil)
	require.Error(t, err)
}
