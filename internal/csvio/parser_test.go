package csvio

import (
	"strings"
	"testing"

	"github.com/krish-p25/invoice-generator/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validHeader = "bill from,bill to,billing address,shipping address,item description,item quantity,item price,item VAT,invoice notes"

func TestParse(t *testing.T) {
	p := NewParser(zap.NewNop())

	t.Run("valid rows parse cleanly", func(t *testing.T) {
		input := validHeader + "\n" +
			"Sender Ltd,Acme Corp,1 Sender St,2 Receiver Ave,Widget,2,100,20,Net 30\n" +
			"Sender Ltd,Beta LLC,1 Sender St,,Gizmo,1,150,,\n"

		result, err := p.Parse(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, result.Rows, 2)
		assert.Empty(t, result.Errors)

		first := result.Rows[0]
		assert.Equal(t, "Sender Ltd", first.BillFrom)
		assert.Equal(t, "Acme Corp", first.BillTo)
		assert.Equal(t, "2", first.ItemQuantity)
		assert.Equal(t, "100", first.ItemPrice)
		assert.Equal(t, "20", first.ItemVAT)
		assert.Equal(t, "Net 30", first.InvoiceNotes)
	})

	t.Run("headers match case and whitespace insensitively", func(t *testing.T) {
		input := "Bill From, BILL TO ,Billing Address,Shipping Address,Item Description,Item Quantity,Item Price,item vat,Invoice Notes\n" +
			"Sender Ltd,Acme Corp,1 Sender St,,Widget,1,10,,\n"

		result, err := p.Parse(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "Acme Corp", result.Rows[0].BillTo)
		assert.Empty(t, result.Errors)
	})

	t.Run("missing required field excludes the row", func(t *testing.T) {
		input := validHeader + "\n" +
			"Sender Ltd,,1 Sender St,,Widget,1,10,,\n" +
			"Sender Ltd,Acme Corp,1 Sender St,,Gadget,1,20,,\n"

		result, err := p.Parse(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "Gadget", result.Rows[0].ItemDescription)

		require.Len(t, result.Errors, 1)
		assert.Equal(t, 2, result.Errors[0].Row)
		assert.Equal(t, entity.ErrKindMissingFields, result.Errors[0].Kind)
		assert.Contains(t, result.Errors[0].Message, "bill to")
	})

	t.Run("invalid numeric value flags but keeps the row", func(t *testing.T) {
		input := validHeader + "\n" +
			"Sender Ltd,Acme Corp,1 Sender St,,Widget,abc,10,,\n"

		result, err := p.Parse(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "abc", result.Rows[0].ItemQuantity)

		require.Len(t, result.Errors, 1)
		assert.Equal(t, entity.ErrKindInvalidValue, result.Errors[0].Kind)
		assert.Contains(t, result.Errors[0].Message, "item quantity")
	})

	t.Run("zero quantity is invalid but zero price is not", func(t *testing.T) {
		input := validHeader + "\n" +
			"Sender Ltd,Acme Corp,1 Sender St,,Widget,0,0,,\n"

		result, err := p.Parse(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0].Message, "item quantity")
	})

	t.Run("row numbers count from the file, not the data", func(t *testing.T) {
		input := validHeader + "\n" +
			"Sender Ltd,Acme Corp,1 Sender St,,Widget,1,10,,\n" +
			"Sender Ltd,Acme Corp,1 Sender St,,Gadget,-1,10,,\n"

		result, err := p.Parse(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, 3, result.Errors[0].Row)
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		input := validHeader + "\n" +
			"\n" +
			"Sender Ltd,Acme Corp,1 Sender St,,Widget,1,10,,\n"

		result, err := p.Parse(strings.NewReader(input))

		require.NoError(t, err)
		assert.Len(t, result.Rows, 1)
		assert.Empty(t, result.Errors)
	})

	t.Run("short records treat absent columns as empty", func(t *testing.T) {
		input := validHeader + "\n" +
			"Sender Ltd,Acme Corp,1 Sender St,,Widget,1,10\n"

		result, err := p.Parse(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, result.Rows, 1)
		assert.Empty(t, result.Rows[0].ItemVAT)
		assert.Empty(t, result.Rows[0].InvoiceNotes)
	})

	t.Run("empty file is a file-level error", func(t *testing.T) {
		_, err := p.Parse(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("header only yields no rows", func(t *testing.T) {
		result, err := p.Parse(strings.NewReader(validHeader + "\n"))

		require.NoError(t, err)
		assert.Empty(t, result.Rows)
		assert.Empty(t, result.Errors)
	})
}

func TestTemplate(t *testing.T) {
	p := NewParser(zap.NewNop())

	// The starter template must round-trip through our own parser.
	result, err := p.Parse(strings.NewReader(string(Template())))

	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "Customer Name", result.Rows[0].BillTo)
	assert.Equal(t, "100.00", result.Rows[0].ItemPrice)
}
