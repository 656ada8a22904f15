package dto

// DeploySafeRequest is the request body for Safe deployment.
type DeploySafeRequest struct {
	OwnerAddress string `json:"owner_address" binding:"required,eth_addr"`
}

// DeploySafeResponse carries the address of the deployed Safe.
type DeploySafeResponse struct {
	Address string `json:"address"`
}

// MintResponse carries the hash of the submitted mint transaction.
type MintResponse struct {
	TransactionHash string `json:"transaction_hash"`
}
