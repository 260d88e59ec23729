package cart

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"codeberg.org/vaidya/server/internal/catalog"
	"codeberg.org/vaidya/server/internal/logger"
)

var priceCleaner = strings.NewReplacer("₹", "", ",", "", " ", "")

// parses a display price like "₹1,250"; ok is false when the value is not numeric
func ParsePrice(price string) (decimal.Decimal, bool) {
	cleaned := priceCleaner.Replace(strings.TrimSpace(price))
	if cleaned == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

// sums item prices, skipping any that do not parse
func Total(items []catalog.Item) decimal.Decimal {
	total := decimal.Zero

	for _, item := range items {
		price, ok := ParsePrice(item.Price())
		if !ok {
			logger.Warn("skipping cart item with invalid price",
				"medicine_name", item.Name(),
				"price", item["price"],
			)
			continue
		}

		total = total.Add(price)
	}

	return total
}

// formats an amount with thousands separators, e.g. 1250 -> "1,250", 1012.5 -> "1,012.50"
func FormatAmount(amount decimal.Decimal) string {
	p := message.NewPrinter(language.English)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	abs := amount.Abs().Round(2)
	whole := p.Sprintf("%d", abs.Truncate(0).IntPart())

	if amount.IsInteger() {
		return sign + whole
	}

	fixed := abs.StringFixed(2)
	return sign + whole + fixed[strings.IndexByte(fixed, '.'):]
}
