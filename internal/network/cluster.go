package network

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Solana cluster identifiers used in explorer links.
const (
	ClusterMainnet = "mainnet-beta"
	ClusterDevnet  = "devnet"
)

// SolanaCluster picks the cluster for receipt links from the resource-server
// host: a localhost or loopback resource server means the payments settle on
// devnet. This is a display concern only.
func SolanaCluster(resourceServerURL string) string {
	u, err := url.Parse(resourceServerURL)
	if err != nil {
		return ClusterMainnet
	}

	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return ClusterDevnet
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return ClusterDevnet
	}
	return ClusterMainnet
}

// ExplorerTxURL returns a block explorer link for a settlement transaction.
// Solana links carry a cluster query parameter when not on mainnet.
func ExplorerTxURL(choice Choice, cluster, tx string) string {
	switch choice {
	case Base:
		return fmt.Sprintf("https://basescan.org/tx/%s", tx)
	case Solana:
		link := fmt.Sprintf("https://explorer.solana.com/tx/%s", tx)
		if cluster != "" && cluster != ClusterMainnet {
			link += "?cluster=" + cluster
		}
		return link
	default:
		return ""
	}
}
