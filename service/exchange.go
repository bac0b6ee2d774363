package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/a-kuchuk/seng2021/config"
)

// ExchangeRateClient looks up currency rates over HTTP.
type ExchangeRateClient struct {
	Config config.Config
}

// exchangeRateResponse is the body returned by the rate API.
type exchangeRateResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Convert fetches the rate from one currency to another and applies it to
// the amount. The result is not rounded here; callers own rounding policy.
func (client *ExchangeRateClient) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	rateURL := fmt.Sprintf("%s?base=%s&symbols=%s", client.Config.ExchangeRateURL, url.QueryEscape(from), url.QueryEscape(to))

	request, err := http.NewRequest("GET", rateURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error generating request for exchange rate API: [%s]", err)
	}
	request.Header.Add("accept", "application/json")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error sending request to exchange rate API: [%s]", err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error reading response from exchange rate API: [%s]", err)
	}

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("error status [%v] back from exchange rate API", resp.StatusCode)
	}

	rateResponse := &exchangeRateResponse{}
	if err = json.Unmarshal(body, rateResponse); err != nil {
		return decimal.Zero, fmt.Errorf("error reading response from exchange rate API: [%s]", err)
	}

	rate, ok := rateResponse.Rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("no rate for [%s] in exchange rate API response", to)
	}

	return amount.Mul(decimal.NewFromFloat(rate)), nil
}
