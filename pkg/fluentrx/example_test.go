package fluentrx_test

import (
	"fmt"
	"strings"

	"github.com/KromDaniel/fluentrx/pkg/fluentrx"
	"github.com/KromDaniel/fluentrx/stream"
)

func Example() {
	email := fluentrx.Regex.Words().Then("@").Words().Then(".").Words()
	fmt.Println(email.Pattern())

	ok, _ := email.Test("user@example.com")
	fmt.Println(ok)
	// Output:
	// \w+@\w+\.\w+
	// true
}

func ExampleBuilder_Capture() {
	kv := fluentrx.Regex.Capture(fluentrx.Regex.Words()).Then("=").Capture(fluentrx.Regex.AnyChars())

	m, _ := kv.Search("color=blue")
	fmt.Println(kv.Pattern())
	fmt.Println(m.Group(1), m.Group(2))
	// Output:
	// (\w+)=(.+)
	// color blue
}

func ExampleBuilder_Excluding() {
	fmt.Println(fluentrx.Regex.Words().Excluding("_").Pattern())
	fmt.Println(fluentrx.Regex.Letter().Excluding("x").Pattern())
	// Output:
	// [^\W_]+
	// [^a-zA-Zx]
}

func ExampleBuilder_Exclude() {
	found, _ := fluentrx.Regex.Exclude().Digits().FindAll("a1b2c3")
	fmt.Println(found)
	// Output: [a b c]
}

func ExampleBuilder_Split() {
	parts, _ := fluentrx.Regex.Then(",").Whitespace().ZeroOrMore().Split("apple, banana,cherry, date")
	fmt.Printf("%q\n", parts)
	// Output: ["apple" "banana" "cherry" "date"]
}

func ExampleBuilder_ReplaceTemplate() {
	date := fluentrx.Regex.
		Capture(fluentrx.Regex.Digit().Exactly(4)).Then("-").
		Capture(fluentrx.Regex.Digit().Exactly(2)).Then("-").
		Capture(fluentrx.Regex.Digit().Exactly(2))

	out, _ := date.ReplaceTemplate("due 2024-03-15", "$3/$2/$1")
	fmt.Println(out)
	// Output: due 15/03/2024
}

func ExampleBuilder_ScanLines() {
	logs := "INFO start\nERROR disk full\nINFO retry\nERROR timeout\n"

	errs := fluentrx.Regex.StartsWith("ERROR")
	_ = errs.ScanLines(strings.NewReader(logs), func(l stream.Line) bool {
		fmt.Printf("%d: %s\n", l.Number, l.Text)
		return true
	})
	// Output:
	// 2: ERROR disk full
	// 4: ERROR timeout
}

func ExampleBuilder_Err() {
	b := fluentrx.Regex.OneOrMore().Digit()
	fmt.Println(b.Err())
	fmt.Printf("%q\n", b.Pattern())
	// Output:
	// fluentrx: OneOrMore: empty target
	// ""
}

func ExampleBuilder_IgnoreCase() {
	greeting := fluentrx.Regex.StartsWith("hello").IgnoreCase()

	a, _ := greeting.Test("HELLO WORLD")
	b, _ := greeting.Test("hey there")
	fmt.Println(a, b)
	// Output: true false
}

func ExampleGenerateSource() {
	src, err := fluentrx.GenerateSource(fluentrx.Options{
		Package: "patterns",
		Patterns: []fluentrx.NamedPattern{
			{Name: "phone", Builder: fluentrx.Regex.Digit().Exactly(3).Then("-").Digit().Exactly(4)},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(src))
	// Output:
	// // Code generated by fluentrx. DO NOT EDIT.
	//
	// package patterns
	//
	// import "regexp"
	//
	// var (
	// 	// Phone matches `\d{3}-\d{4}`.
	// 	Phone = regexp.MustCompile("\\d{3}-\\d{4}")
	// )
}
