package generator_test

import (
	"fmt"

	"github.com/simonhull/firebird-suite/conflict/generator"
)

func ExampleLineDiff() {
	parts := generator.LineDiff("one\ntwo\nthree\n", "one\n2\nthree\n")

	for _, p := range parts {
		switch p.Kind {
		case generator.Added:
			fmt.Printf("+ %q\n", p.Value)
		case generator.Removed:
			fmt.Printf("- %q\n", p.Value)
		default:
			fmt.Printf("  %q\n", p.Value)
		}
	}
	// Output:
	//   "one\n"
	// - "two\n"
	// + "2\n"
	//   "three\n"
}

func ExampleGenerateDiff_withLineNumbers() {
	old := []byte("func main() {\n\tfmt.Println(\"old\")\n}\n")
	newer := []byte("func main() {\n\tfmt.Println(\"new\")\n}\n")

	diff := generator.GenerateDiff("main.go", "main.go", old, newer, &generator.DiffOptions{
		ContextLines: 2,
		TabWidth:     4,
		ShowLineNums: true,
	})
	fmt.Println(diff != "")
	// Output: true
}
