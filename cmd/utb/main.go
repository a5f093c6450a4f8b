// Command utb is an example embedding binary: it registers a small
// legacy test module and hands control to the bridge CLI. Real projects
// build their own main that registers their modules the same way.
package main

import (
	"fmt"
	"os"
	"runtime"

	"utb"
	"utb/xunit"
)

// GreeterTest is a minimal legacy-style test case.
type GreeterTest struct {
	xunit.TestCase
}

func (c *GreeterTest) TestGreetsByName(t *xunit.T) {
	t.AssertEqual("hello, alice", greet("alice"))
}

func (c *GreeterTest) TestRejectsEmptyName(t *xunit.T) {
	if _, err := greetErr(""); err == nil {
		t.Fatal("expected an error for an empty name")
	}
}

func greet(name string) string {
	return "hello, " + name
}

func greetErr(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty name")
	}
	return greet(name), nil
}

func init() {
	// Scenario descriptors carry the absolute path of their origin file.
	_, file, _, _ := runtime.Caller(0)
	m := xunit.NewModule("examples.greeter", file)
	m.Add(&GreeterTest{})
	utb.MustRegister(m)
}

func main() {
	os.Exit(utb.Execute())
}
