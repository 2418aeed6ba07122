package invoice

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency describes one supported invoice currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Currencies lists every supported currency, sorted by display name.
var Currencies = sortedCurrencies([]Currency{
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "BDT", Symbol: "৳", Name: "Bangladeshi Taka"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "CZK", Symbol: "Kč", Name: "Czech Koruna"},
	{Code: "DKK", Symbol: "kr", Name: "Danish Krone"},
	{Code: "EGP", Symbol: "E£", Name: "Egyptian Pound"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar"},
	{Code: "HUF", Symbol: "Ft", Name: "Hungarian Forint"},
	{Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah"},
	{Code: "ILS", Symbol: "₪", Name: "Israeli Shekel"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{Code: "MXN", Symbol: "Mex$", Name: "Mexican Peso"},
	{Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
	{Code: "NGN", Symbol: "₦", Name: "Nigerian Naira"},
	{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
	{Code: "PHP", Symbol: "₱", Name: "Philippine Peso"},
	{Code: "PKR", Symbol: "₨", Name: "Pakistani Rupee"},
	{Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
	{Code: "RUB", Symbol: "₽", Name: "Russian Ruble"},
	{Code: "SAR", Symbol: "SR", Name: "Saudi Riyal"},
	{Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "THB", Symbol: "฿", Name: "Thai Baht"},
	{Code: "TRY", Symbol: "₺", Name: "Turkish Lira"},
	{Code: "TWD", Symbol: "NT$", Name: "Taiwan Dollar"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "VND", Symbol: "₫", Name: "Vietnamese Dong"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
})

// DefaultCurrency is used whenever a currency code is unknown or empty.
var DefaultCurrency = Currency{Code: "USD", Symbol: "$", Name: "US Dollar"}

var printer = message.NewPrinter(language.English)

func sortedCurrencies(cs []Currency) []Currency {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Name < cs[j].Name })
	return cs
}

// CurrencyByCode looks up a currency, falling back to the default.
func CurrencyByCode(code string) Currency {
	for _, c := range Currencies {
		if c.Code == code {
			return c
		}
	}
	return DefaultCurrency
}

// FormatAmount renders an amount with its currency symbol, grouped
// thousands and two decimal places, e.g. "$1,234.50".
func FormatAmount(amount float64, code string) string {
	c := CurrencyByCode(code)
	return c.Symbol + printer.Sprintf("%.2f", amount)
}

// FormatPercent renders a percentage value, e.g. "20.00%".
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}
