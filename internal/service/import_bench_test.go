package service_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/chadm2c/xml-importer/internal/logger"
	"github.com/chadm2c/xml-importer/internal/mocks"
	"github.com/chadm2c/xml-importer/internal/service"
	"github.com/chadm2c/xml-importer/internal/validator"
	"github.com/chadm2c/xml-importer/internal/xmlparser"
)

// benchCatalog builds a document of n products where every fifth item has a bad price.
func benchCatalog(n int) []byte {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		price := "19.99"
		if i%5 == 4 {
			price = "abc"
		}
		items = append(items, productXML(fmt.Sprintf("Product %d", i), price, fmt.Sprintf("SKU-%d", i)))
	}
	return document(items...)
}

func benchElement(b *testing.B, price string) *xmlparser.Element {
	b.Helper()
	root, err := xmlparser.ParseDocument(bytes.NewReader(document(productXML("Widget", price, "W-1"))))
	if err != nil {
		b.Fatal(err)
	}
	return root.First("product")
}

func BenchmarkValidateProductOnly(b *testing.B) {
	v := validator.NewProductValidator(fixedNow)
	item := benchElement(b, "19.99")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Validate(item, 1)
	}
}

func BenchmarkValidateProductWithInvalidPrice(b *testing.B) {
	v := validator.NewProductValidator(fixedNow)
	item := benchElement(b, "abc")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Validate(item, 1)
	}
}

func BenchmarkParse1000Products(b *testing.B) {
	parser := newParser()
	data := benchCatalog(1000)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result := parser.Parse(data, int64(len(data)))
		if result.TotalProcessed != 1000 {
			b.Fatalf("processed %d products", result.TotalProcessed)
		}
	}
}

func BenchmarkImport1000Products(b *testing.B) {
	logger.Configure(io.Discard, "error")
	b.Cleanup(func() { logger.Configure(io.Discard, "info") })

	repo := mocks.NewMockProductRepository(b)
	repo.EXPECT().
		InsertAll(mock.Anything, mock.Anything).
		RunAndReturn(echoInsert).
		Maybe()

	svc := service.NewImportService(newParser(), repo, nil, nil)
	req := xmlRequest(benchCatalog(1000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		outcome := svc.Import(context.Background(), req)
		if outcome.ImportedCount != 800 {
			b.Fatalf("imported %d products", outcome.ImportedCount)
		}
	}
}
