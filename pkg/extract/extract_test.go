package extract

import (
	"strings"
	"testing"
)

func TestElements_CountMatchesOccurrences(t *testing.T) {
	doc := `<FlexQueryResponse>
<Trade tradeID="1" symbol="AAPL" />
<Trade tradeID="2" symbol="MSFT" />
<OpenPosition symbol="AAPL" position="100" />
<Trade tradeID="3" symbol="GOOG" />
</FlexQueryResponse>`

	trades := Elements(doc, "Trade")
	if len(trades) != 3 {
		t.Fatalf("Elements(Trade) returned %d occurrences, want 3", len(trades))
	}

	positions := Elements(doc, "OpenPosition")
	if len(positions) != 1 {
		t.Fatalf("Elements(OpenPosition) returned %d occurrences, want 1", len(positions))
	}

	if trades[0]["tradeID"] != "1" || trades[2]["tradeID"] != "3" {
		t.Errorf("occurrences not in document order: %v", trades)
	}
	if trades[1]["symbol"] != "MSFT" {
		t.Errorf("trades[1][symbol] = %q, want %q", trades[1]["symbol"], "MSFT")
	}
}

func TestElements_EmptyDocument(t *testing.T) {
	for _, tag := range []string{"Trade", "OpenPosition", "CashTransaction", "CorporateAction"} {
		if got := Elements("", tag); len(got) != 0 {
			t.Errorf("Elements(empty, %s) = %v, want empty", tag, got)
		}
	}
}

func TestElements_NoAttributes(t *testing.T) {
	// An element with a whitespace-only attribute region yields an empty map.
	elements := Elements(`<Trade />`, "Trade")
	if len(elements) != 1 {
		t.Fatalf("Elements() returned %d occurrences, want 1", len(elements))
	}
	if len(elements[0]) != 0 {
		t.Errorf("elements[0] = %v, want empty map", elements[0])
	}
}

func TestElements_WhitespaceAndAttributeOrder(t *testing.T) {
	doc := "<Trade   symbol=\"AAPL\"   tradeID=\"9\"  />"
	elements := Elements(doc, "Trade")
	if len(elements) != 1 {
		t.Fatalf("Elements() returned %d occurrences, want 1", len(elements))
	}
	if elements[0]["tradeID"] != "9" {
		t.Errorf("tradeID = %q, want %q", elements[0]["tradeID"], "9")
	}
	if elements[0]["symbol"] != "AAPL" {
		t.Errorf("symbol = %q, want %q", elements[0]["symbol"], "AAPL")
	}
}

func TestElements_TagNameIsNotAPrefixMatch(t *testing.T) {
	// <TradeConfirm .../> must not count as a Trade occurrence.
	doc := `<TradeConfirm tradeID="1" /><Trade tradeID="2" />`
	elements := Elements(doc, "Trade")
	if len(elements) != 1 {
		t.Fatalf("Elements(Trade) returned %d occurrences, want 1", len(elements))
	}
	if elements[0]["tradeID"] != "2" {
		t.Errorf("tradeID = %q, want %q", elements[0]["tradeID"], "2")
	}
}

func TestElements_MalformedPairOmitted(t *testing.T) {
	// An unquoted value fails the pair pattern and is silently dropped;
	// well-formed pairs on the same element still match.
	doc := `<Trade tradeID=1 symbol="AAPL" />`
	elements := Elements(doc, "Trade")
	if len(elements) != 1 {
		t.Fatalf("Elements() returned %d occurrences, want 1", len(elements))
	}
	if _, ok := elements[0]["tradeID"]; ok {
		t.Errorf("malformed tradeID pair should be omitted, got %v", elements[0])
	}
	if elements[0]["symbol"] != "AAPL" {
		t.Errorf("symbol = %q, want %q", elements[0]["symbol"], "AAPL")
	}
}

func TestElements_EmptyValue(t *testing.T) {
	elements := Elements(`<Trade notes="" symbol="AAPL" />`, "Trade")
	if len(elements) != 1 {
		t.Fatalf("Elements() returned %d occurrences, want 1", len(elements))
	}
	v, ok := elements[0]["notes"]
	if !ok {
		t.Fatal("notes attribute should be present with empty value")
	}
	if v != "" {
		t.Errorf("notes = %q, want empty string", v)
	}
}

func TestTagNames(t *testing.T) {
	doc := `<Trade tradeID="1" />
<Trade tradeID="2" />
<OpenPosition symbol="AAPL" />
<CashTransaction amount="5" />
<Trade tradeID="3" />`

	tags := TagNames(doc)
	if len(tags) != 3 {
		t.Fatalf("TagNames() returned %d tags, want 3", len(tags))
	}

	if tags[0].Name != "Trade" || tags[0].Count != 3 {
		t.Errorf("tags[0] = %+v, want {Trade 3}", tags[0])
	}

	// Ties sort by name.
	if tags[1].Name != "CashTransaction" || tags[2].Name != "OpenPosition" {
		t.Errorf("tie order = %q, %q, want CashTransaction, OpenPosition", tags[1].Name, tags[2].Name)
	}
}

func TestTagNames_EmptyDocument(t *testing.T) {
	if got := TagNames(""); len(got) != 0 {
		t.Errorf("TagNames(empty) = %v, want empty", got)
	}
}

func TestElements_LongDocument(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 500; i++ {
		b.WriteString(`<Trade tradeID="x" symbol="AAPL" />` + "\n")
	}
	elements := Elements(b.String(), "Trade")
	if len(elements) != 500 {
		t.Errorf("Elements() returned %d occurrences, want 500", len(elements))
	}
}
