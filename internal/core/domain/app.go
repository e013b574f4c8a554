package domain

import "strings"

const zeroAddress = "0x0000000000000000000000000000000000000000"

// AppInfo is the static metadata the page header and the wallet modal show.
type AppInfo struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	URL               string `json:"url"`
	Icon              string `json:"icon"`
	ChainID           int64  `json:"chain_id"`
	Network           string `json:"network"`
	RPCURL            string `json:"rpc_url"`
	ContractAddress   string `json:"contract_address"`
	DeploymentPending bool   `json:"deployment_pending"`
}

// ContractDeployed reports whether addr points at a deployed contract,
// i.e. is set and is not the zero address.
func ContractDeployed(addr string) bool {
	addr = strings.TrimSpace(addr)
	return addr != "" && !strings.EqualFold(addr, zeroAddress)
}

// PageState is everything the presentation layer needs for one mount.
type PageState struct {
	App        AppInfo      `json:"app"`
	Banner     Banner       `json:"banner"`
	Consent    ConsentState `json:"consent"`
	Disclaimer *Disclaimer  `json:"disclaimer,omitempty"`
	Wallet     WalletView   `json:"wallet"`
}
