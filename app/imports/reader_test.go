package imports

import (
	"strings"
	"testing"
)

func TestReadCSVMapsHeadersToRows(t *testing.T) {
	data := "Name,SKU,Price\nRed Shirt,RS-001,19.99\nBlue Shirt,BS-001,"
	rows, err := readCSV(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Get("name") != "Red Shirt" || rows[0].Get("sku") != "RS-001" {
		t.Errorf("row 1: %v", rows[0])
	}
	// ragged rows pad missing cells with empty strings
	if rows[1].Get("price") != "" {
		t.Errorf("row 2 price: %q", rows[1].Get("price"))
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	rows, err := readCSV(strings.NewReader("name,sku\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("header-only input should yield no rows, got %d", len(rows))
	}
}

func TestChunkRows(t *testing.T) {
	rows := make([]Row, 120)
	chunks := chunkRows(rows, 50)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != 50 || len(chunks[2]) != 20 {
		t.Errorf("chunk sizes: %d %d %d", len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}
}
