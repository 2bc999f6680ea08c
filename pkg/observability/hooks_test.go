package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopCheckHooks{}
	c.OnCheckStart(ctx, 120)
	c.OnModuleMatched(ctx, "./node_modules/vue/index.js", "vue", "./src/main.js", true)
	c.OnPackageUnresolved(ctx, "./node_modules/orphan/index.js")
	c.OnCheckComplete(ctx, CheckSummary{Modules: 120, Bundled: 3}, time.Second, nil)

	b := NoopBuildHooks{}
	b.OnBuildStart(ctx, "npx webpack --json")
	b.OnBuildComplete(ctx, "npx webpack --json", 4096, time.Second, errors.New("exit status 2"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Check().(NoopCheckHooks); !ok {
		t.Error("Check() should return NoopCheckHooks by default")
	}
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Build() should return NoopBuildHooks by default")
	}

	customCheck := &testCheckHooks{}
	SetCheckHooks(customCheck)
	if Check() != customCheck {
		t.Error("SetCheckHooks should set custom hooks")
	}

	customBuild := &testBuildHooks{}
	SetBuildHooks(customBuild)
	if Build() != customBuild {
		t.Error("SetBuildHooks should set custom hooks")
	}

	Reset()
	if _, ok := Check().(NoopCheckHooks); !ok {
		t.Error("Reset() should restore NoopCheckHooks")
	}
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Reset() should restore NoopBuildHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testCheckHooks{}
	SetCheckHooks(custom)
	SetCheckHooks(nil)

	if Check() != custom {
		t.Error("SetCheckHooks(nil) should be ignored")
	}

	Reset()
}

type testCheckHooks struct{ NoopCheckHooks }
type testBuildHooks struct{ NoopBuildHooks }
