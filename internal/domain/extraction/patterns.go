package extraction

import "regexp"

const (
	tokenGroup       = `([A-Z0-9\-/]+)`
	numericDateGroup = `(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`
	amountGroup      = `([\d,]+\.?\d*)`
)

// Patrones por campo, en orden de prioridad.
var (
	InvoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:invoice\s*#?|inv\s*#?|invoice\s*number)\s*:?\s*` + tokenGroup),
		regexp.MustCompile(`(?i)#\s*` + tokenGroup),
		regexp.MustCompile(`(?i)invoice\s+` + tokenGroup),
	}

	DatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:invoice\s*date|date)\s*:?\s*` + numericDateGroup),
		regexp.MustCompile(numericDateGroup),
		regexp.MustCompile(`(\d{4}[-/]\d{1,2}[-/]\d{1,2})`),
	}

	DueDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:due\s*date|payment\s*due)\s*:?\s*` + numericDateGroup),
		regexp.MustCompile(`(?i)due\s+` + numericDateGroup),
	}

	// El segundo patrón es estructural: línea en mayúsculas con sufijo societario opcional.
	// Distingue mayúsculas a propósito.
	SellerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:from|seller|vendor|supplier|bill\s*from)\s*:?\s*([^\n]+)`),
		regexp.MustCompile(`(?m)^([A-Z][A-Z\s&,\.]+(?:Inc|LLC|Ltd|Corp|Company)?)`),
	}

	BuyerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:to|buyer|customer|bill\s*to)\s*:?\s*([^\n]+)`),
		regexp.MustCompile(`(?i)bill\s+to\s*:?\s*([^\n]+)`),
	}

	AddressPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:address)\s*:?\s*([^\n]+(?:\n[^\n]+){0,3})`),
		regexp.MustCompile(`(?i)(\d+\s+[A-Z][A-Za-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Lane|Ln|Drive|Dr|Boulevard|Blvd)[^\n]*)`),
	}

	TaxIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:tax\s*id|vat\s*id|gstin|ein)\s*:?\s*([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?i)(?:tax\s*identification|vat\s*number)\s*:?\s*([A-Z0-9\-]+)`),
	}

	CurrencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:currency)\s*:?\s*([A-Z]{3})`),
		regexp.MustCompile(`(?i)([€$₹]|EUR|USD|INR)`),
	}

	// AmountPatterns patrones genéricos cuando el llamador no aporta los suyos.
	AmountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+[,\.]?\d*\.\d{2})`),
		regexp.MustCompile(`(\d+[,\.]\d{3}(?:\.\d{2})?)`),
	}

	NetTotalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:subtotal|net\s*total|total\s*before\s*tax)\s*:?\s*` + amountGroup),
		regexp.MustCompile(`(?i)subtotal\s+` + amountGroup),
	}

	TaxAmountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:tax|vat|gst)\s*(?:amount|total)?\s*:?\s*` + amountGroup),
		regexp.MustCompile(`(?i)tax\s+` + amountGroup),
	}

	GrossTotalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:total|grand\s*total|amount\s*due)\s*:?\s*` + amountGroup),
		regexp.MustCompile(`(?i)total\s+` + amountGroup),
		regexp.MustCompile(`(?i)amount\s+due\s+` + amountGroup),
	}

	// Cabecera de tabla: palabras de descripción, cantidad, precio y total en ese orden relativo.
	TableHeaderPattern = regexp.MustCompile(`(?is)(?:description|item|product).*?(?:qty|quantity).*?(?:price|unit).*?(?:total|amount)`)

	// Fila: <descripción> <cantidad> <precio> <total>.
	LineItemRowPattern = regexp.MustCompile(`(?i)([A-Za-z0-9\s\-\.]+?)\s+(\d+\.?\d*)\s+([\d,]+\.?\d*)\s+([\d,]+\.?\d*)`)
)

var (
	invoiceNumberMatchers = CaptureAll(InvoiceNumberPatterns...)
	dateMatchers          = CaptureAll(DatePatterns...)
	dueDateMatchers       = CaptureAll(DueDatePatterns...)
	sellerMatchers        = CaptureAll(SellerPatterns...)
	buyerMatchers         = CaptureAll(BuyerPatterns...)
	addressMatchers       = CaptureAll(AddressPatterns...)
	taxIDMatchers         = CaptureAll(TaxIDPatterns...)
	currencyMatchers      = CaptureAll(CurrencyPatterns...)
)
