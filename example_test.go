package fwf_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	fwf "github.com/voxlight/go-fwf"
)

func ExampleFileHandler_Encode() {
	name, _ := fwf.NewColumnSpec("name", 10, fwf.WithOrder(1))
	age, _ := fwf.NewColumnSpec("age", 3, fwf.WithOrder(2), fwf.WithFill('0'), fwf.WithAlign(fwf.Right))

	h := fwf.NewFileHandler()
	for _, p := range []struct {
		name string
		age  int
	}{
		{"Alice", 25},
		{"Bob", 30},
		{"Charlie", 35},
	} {
		if err := h.AddRow(fwf.NewRow(fwf.Value(name, p.name), fwf.Value(age, p.age))); err != nil {
			log.Fatal(err)
		}
	}

	if _, err := h.Encode(os.Stdout); err != nil {
		log.Fatal(err)
	}
	// Output:
	// Alice     025
	// Bob       030
	// Charlie   035
}

func ExampleDecode() {
	name, _ := fwf.NewColumnSpec("name", 10)
	age, _ := fwf.NewColumnSpec("age", 3, fwf.WithFill('0'), fwf.WithAlign(fwf.Right))

	data := "Alice     025\nBob       030\n"
	rows, err := fwf.Decode(strings.NewReader(data), fwf.Layout{name, age})
	if err != nil {
		log.Fatal(err)
	}
	for _, row := range rows {
		columns := row.Populate()
		fmt.Printf("%s is %s\n", columns[0].Data(), columns[1].Data())
	}
	// Output:
	// Alice is 25
	// Bob is 30
}

func ExampleRow_Line() {
	sku, _ := fwf.NewColumnSpec("sku", 8)
	qty, _ := fwf.NewColumnSpec("qty", 5, fwf.WithFill('0'), fwf.WithAlign(fwf.Right))

	row := fwf.NewRow(
		fwf.Value(sku, "A-113"),
		fwf.Value(qty, 7),
	)
	fmt.Println(row.Line())
	// Output:
	// A-113   00007
}

func ExampleFloat() {
	price, _ := fwf.NewColumnSpec("price", 8)
	col, _ := fwf.NewColumn(fwf.Float(3.5), price)
	fmt.Println(col.Shaped())
	// Output:
	// 3.500000
}
