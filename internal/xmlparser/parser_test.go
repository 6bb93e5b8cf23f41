package xmlparser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chadm2c/xml-importer/internal/validator"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestParser() *Parser {
	return NewParser(validator.NewProductValidator(func() time.Time { return fixedNow }))
}


const threeProducts = `<?xml version="1.0" encoding="UTF-8"?>
<products>
  <product>
    <name>Widget</name>
    <brand>Acme</brand>
    <price>19.99</price>
    <storageDate>2024-01-10</storageDate>
    <sku>W-1</sku>
  </product>
  <product>
    <name>Gadget</name>
    <brand>Acme</brand>
    <storageDate>2024-01-11</storageDate>
  </product>
  <product>
    <name>Gizmo</name>
    <brand>Globex</brand>
    <price>5,50</price>
    <storageDate>01/02/2024</storageDate>
    <quantityInStock>7</quantityInStock>
  </product>
</products>`

func TestParser_Parse(t *testing.T) {
	p := newTestParser()

	t.Run("collects valid products and per-item errors", func(t *testing.T) {
		result := p.Parse([]byte(threeProducts), int64(len(threeProducts)))

		assert.Equal(t, 3, result.TotalProcessed)
		require.Len(t, result.Products, 2)
		assert.Equal(t, "Widget", result.Products[0].Name)
		assert.Equal(t, "Gizmo", result.Products[1].Name)
		assert.Equal(t, 7, result.Products[1].QuantityInStock)
		assert.Equal(t, []string{"Failed to parse product at position 2: Price is required"}, result.Errors)
	})

	t.Run("rejects oversized files before parsing", func(t *testing.T) {
		result := p.Parse([]byte(threeProducts), MaxFileSize+1)

		assert.Empty(t, result.Products)
		assert.Equal(t, 0, result.TotalProcessed)
		assert.Equal(t, []string{MsgFileTooLarge}, result.Errors)
	})

	t.Run("accepts file at the size ceiling", func(t *testing.T) {
		result := p.Parse([]byte(threeProducts), MaxFileSize)
		assert.Equal(t, 3, result.TotalProcessed)
	})

	t.Run("rejects empty files", func(t *testing.T) {
		result := p.Parse(nil, 0)

		assert.Empty(t, result.Products)
		assert.Equal(t, 0, result.TotalProcessed)
		assert.Equal(t, []string{MsgFileEmpty}, result.Errors)
	})

	t.Run("reports malformed xml", func(t *testing.T) {
		doc := `<products><product><name>x</name></products>`
		result := p.Parse([]byte(doc), int64(len(doc)))

		require.Len(t, result.Errors, 1)
		assert.True(t, strings.HasPrefix(result.Errors[0], "Error parsing XML file: "), result.Errors[0])
		assert.Equal(t, 0, result.TotalProcessed)
	})

	t.Run("reports entity expansion attempts as parse errors", func(t *testing.T) {
		doc := `<?xml version="1.0"?>
<!DOCTYPE lolz [<!ENTITY lol "lol"><!ENTITY lol2 "&lol;&lol;&lol;">]>
<products><product><name>&lol2;</name></product></products>`
		result := p.Parse([]byte(doc), int64(len(doc)))

		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "Error parsing XML file: ")
		assert.Empty(t, result.Products)
	})

	t.Run("rejects wrong root element", func(t *testing.T) {
		doc := `<items><product><name>x</name></product></items>`
		result := p.Parse([]byte(doc), int64(len(doc)))

		assert.Equal(t, []string{"Invalid XML structure: root element must be 'products'"}, result.Errors)
		assert.Equal(t, 0, result.TotalProcessed)
	})

	t.Run("reports missing product elements", func(t *testing.T) {
		doc := `<products></products>`
		result := p.Parse([]byte(doc), int64(len(doc)))

		assert.Equal(t, []string{MsgNoProducts}, result.Errors)
		assert.Equal(t, 0, result.TotalProcessed)
	})

	t.Run("finds nested product elements", func(t *testing.T) {
		doc := `<products><section><product><name>A</name><brand>B</brand><price>1</price><storageDate>2024-01-01</storageDate></product></section></products>`
		result := p.Parse([]byte(doc), int64(len(doc)))

		assert.Empty(t, result.Errors)
		assert.Equal(t, 1, result.TotalProcessed)
		require.Len(t, result.Products, 1)
	})

	t.Run("accepts a document starting with a UTF-8 byte order mark", func(t *testing.T) {
		doc := "\xef\xbb\xbf" + threeProducts
		result := p.Parse([]byte(doc), int64(len(doc)))

		assert.Equal(t, 3, result.TotalProcessed)
		require.Len(t, result.Products, 2)
		assert.Equal(t, []string{"Failed to parse product at position 2: Price is required"}, result.Errors)
	})

	t.Run("transcodes a declared ISO-8859-1 document", func(t *testing.T) {
		doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
			"<products><product><name>Caf\xe9</name><brand>Acme</brand>" +
			"<price>3.20</price><storageDate>2024-01-10</storageDate></product></products>"
		result := p.Parse([]byte(doc), int64(len(doc)))

		assert.Empty(t, result.Errors)
		require.Len(t, result.Products, 1)
		assert.Equal(t, "Café", result.Products[0].Name)
	})

	t.Run("every missing required field fails only its item", func(t *testing.T) {
		doc := `<products>
<product><brand>B</brand><price>1</price><storageDate>2024-01-01</storageDate></product>
<product><name>A</name><price>1</price><storageDate>2024-01-01</storageDate></product>
<product><name>A</name><brand>B</brand><storageDate>2024-01-01</storageDate></product>
<product><name>A</name><brand>B</brand><price>1</price></product>
<product><name>A</name><brand>B</brand><price>1</price><storageDate>2024-01-01</storageDate></product>
</products>`
		result := p.Parse([]byte(doc), int64(len(doc)))

		assert.Equal(t, 5, result.TotalProcessed)
		assert.Len(t, result.Products, 1)
		assert.Equal(t, []string{
			"Failed to parse product at position 1: Product name is required",
			"Failed to parse product at position 2: Brand is required",
			"Failed to parse product at position 3: Price is required",
			"Failed to parse product at position 4: Storage date is required",
		}, result.Errors)
	})

	t.Run("is deterministic for the same input", func(t *testing.T) {
		first := p.Parse([]byte(threeProducts), int64(len(threeProducts)))
		second := p.Parse([]byte(threeProducts), int64(len(threeProducts)))

		assert.Equal(t, first, second)
	})
}

func TestParser_Outcomes(t *testing.T) {
	p := newTestParser()
	root, err := ParseDocument(strings.NewReader(threeProducts))
	require.NoError(t, err)

	var positions []int
	for outcome := range p.Outcomes(root.Descendants(ItemElement)) {
		positions = append(positions, outcome.Position)
		assert.True(t, (outcome.Product == nil) != (outcome.Failure == nil), "exactly one of product or failure")
		if outcome.Position == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, positions)
}
