package domain

// ProtocolFamily identifies the RPC convention a chain speaks.
type ProtocolFamily string

const (
	FamilyEVM     ProtocolFamily = "evm"
	FamilyXRPL    ProtocolFamily = "xrpl"
	FamilySolana  ProtocolFamily = "solana"
	FamilyBitcoin ProtocolFamily = "bitcoin"
	FamilyTron    ProtocolFamily = "tron"
)

// ChainDescriptor holds the static connection metadata for one supported chain.
// Descriptors are loaded once at startup and never mutated.
type ChainDescriptor struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Family      ProtocolFamily `json:"protocol_family"`
	Symbol      string         `json:"symbol"`
	Decimals    int            `json:"decimals"`
	RPCEndpoint string         `json:"rpc_endpoint"`
	EVMChainID  int64          `json:"evm_chain_id,omitempty"`
}

// supportedChains is the static chain catalog. Order is the display order.
var supportedChains = []ChainDescriptor{
	{ID: "xrp", Name: "XRP Ledger", Family: FamilyXRPL, Symbol: "XRP", Decimals: 6, RPCEndpoint: "https://xrplcluster.com"},
	{ID: "ethereum", Name: "Ethereum", Family: FamilyEVM, Symbol: "ETH", Decimals: 18, RPCEndpoint: "https://cloudflare-eth.com", EVMChainID: 1},
	{ID: "bsc", Name: "BNB Chain", Family: FamilyEVM, Symbol: "BNB", Decimals: 18, RPCEndpoint: "https://bsc-dataseed.binance.org", EVMChainID: 56},
	{ID: "polygon", Name: "Polygon", Family: FamilyEVM, Symbol: "MATIC", Decimals: 18, RPCEndpoint: "https://polygon-rpc.com", EVMChainID: 137},
	{ID: "avalanche", Name: "Avalanche", Family: FamilyEVM, Symbol: "AVAX", Decimals: 18, RPCEndpoint: "https://api.avax.network/ext/bc/C/rpc", EVMChainID: 43114},
	{ID: "arbitrum", Name: "Arbitrum", Family: FamilyEVM, Symbol: "ETH", Decimals: 18, RPCEndpoint: "https://arb1.arbitrum.io/rpc", EVMChainID: 42161},
	{ID: "optimism", Name: "Optimism", Family: FamilyEVM, Symbol: "ETH", Decimals: 18, RPCEndpoint: "https://mainnet.optimism.io", EVMChainID: 10},
	{ID: "base", Name: "Base", Family: FamilyEVM, Symbol: "ETH", Decimals: 18, RPCEndpoint: "https://mainnet.base.org", EVMChainID: 8453},
	{ID: "solana", Name: "Solana", Family: FamilySolana, Symbol: "SOL", Decimals: 9, RPCEndpoint: "https://api.mainnet-beta.solana.com"},
	{ID: "bitcoin", Name: "Bitcoin", Family: FamilyBitcoin, Symbol: "BTC", Decimals: 8, RPCEndpoint: "https://blockstream.info/api"},
	{ID: "tron", Name: "Tron", Family: FamilyTron, Symbol: "TRX", Decimals: 6, RPCEndpoint: "https://api.trongrid.io"},
}

var chainByID map[string]ChainDescriptor

func init() {
	chainByID = make(map[string]ChainDescriptor, len(supportedChains))
	for _, c := range supportedChains {
		chainByID[c.ID] = c
	}
}

// Chains returns the full chain catalog in display order.
func Chains() []ChainDescriptor {
	out := make([]ChainDescriptor, len(supportedChains))
	copy(out, supportedChains)
	return out
}

// ChainByID looks up a chain descriptor by its id.
func ChainByID(id string) (ChainDescriptor, bool) {
	c, ok := chainByID[id]
	return c, ok
}
