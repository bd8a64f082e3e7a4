package client

// accountSchema is the minimum shape of an account detail response.
const accountSchema = `{
  "$schema": "http://json-schema.org/draft-04/schema#",
  "type": "object",
  "required": [
    "accountId", "accountName", "accountCurrency",
    "balance", "unrealizedPl", "realizedPl",
    "marginRate", "marginUsed", "marginAvail",
    "openOrders", "openTrades"
  ],
  "properties": {
    "accountId":       {"type": "integer"},
    "accountName":     {"type": "string"},
    "accountCurrency": {"type": "string"},
    "balance":         {"type": "number"},
    "unrealizedPl":    {"type": "number"},
    "realizedPl":      {"type": "number"},
    "marginRate":      {"type": "number"},
    "marginUsed":      {"type": "number"},
    "marginAvail":     {"type": "number"},
    "openOrders":      {"type": "integer", "minimum": 0},
    "openTrades":      {"type": "integer", "minimum": 0}
  }
}`
