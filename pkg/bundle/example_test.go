package bundle_test

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/matzehuels/bundlecheck/pkg/bundle"
	"github.com/matzehuels/bundlecheck/pkg/manifest"
	"github.com/matzehuels/bundlecheck/pkg/stats"
)

func ExampleClassifier() {
	c := bundle.NewClassifier(bundle.DefaultConfig())

	fmt.Println(c.ClassifyModule(stats.NewIdentifier("./node_modules/lodash/lodash.js")))
	fmt.Println(c.ClassifyModule(stats.NewIdentifier("./src/main.js")))
	fmt.Println(c.ClassifyModule(stats.NewIdentifier("./src/style.css")))
	fmt.Println(c.ClassifyReason(stats.NewIdentifier("./src/App.vue?vue&type=script")))
	fmt.Println(c.ReasonText(stats.NewIdentifier("./node_modules/vue-loader/dist/index.js!./src/App.vue?vue&type=script")))
	// Output:
	// library
	// host
	// unknown
	// host
	// ./src/App.vue
}

func ExampleReconcile() {
	bundled := []string{"vue", "dayjs"}
	declared := []string{"vue", "axios"}

	missing, unused := bundle.Reconcile(bundled, declared)
	fmt.Println("Missing:", missing)
	fmt.Println("Unused:", unused)
	// Output:
	// Missing: [dayjs]
	// Unused: [axios]
}

func ExampleChecker_Run() {
	// A Vue project whose component imports dayjs without declaring it.
	root := filepath.Join("..", "..", "examples", "vue-app")

	st, err := stats.Import(filepath.Join(root, "stats.json"))
	if err != nil {
		fmt.Println(err)
		return
	}
	m, err := manifest.Load(filepath.Join(root, manifest.FileName))
	if err != nil {
		fmt.Println(err)
		return
	}
	declared, _ := m.Declared()

	res, err := bundle.NewChecker(bundle.DefaultConfig(), root, bundle.Options{}).
		Run(context.Background(), st.Modules, declared)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range res.Bundled {
		fmt.Printf("%s (%s)\n", e.Name, e.Reason)
	}
	fmt.Println("Missing:", res.Missing)
	fmt.Println("Unused:", res.Unused)
	// Output:
	// vue (./src/main.js)
	// dayjs (./src/App.vue)
	// Missing: [dayjs]
	// Unused: [axios]
}
