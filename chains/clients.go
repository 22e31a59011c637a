package chains

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sprintertech/sprinter-settlement/chains/evm/client"
	"github.com/sprintertech/sprinter-settlement/chains/solana"
	"github.com/sprintertech/sprinter-settlement/registry"
	"github.com/sprintertech/sprinter-settlement/settlement"
)

var ErrUnsupportedFamily = errors.New("unsupported chain family")

// Clients holds one client per configured chain. It is populated at start-up
// and only read afterwards.
type Clients struct {
	evm     map[string]*client.EVMClient
	ledgers map[string]settlement.LedgerClient
}

func NewClients() *Clients {
	return &Clients{
		evm:     make(map[string]*client.EVMClient),
		ledgers: make(map[string]settlement.LedgerClient),
	}
}

func (c *Clients) RegisterEVM(chain string, client *client.EVMClient) {
	key := strings.ToLower(chain)
	c.evm[key] = client
	c.ledgers[key] = client
}

func (c *Clients) RegisterSolana(chain string, client *solana.SolanaClient) {
	c.ledgers[strings.ToLower(chain)] = client
}

// EVM returns the contract capable client of chain.
func (c *Clients) EVM(chain string) (settlement.EVMClient, error) {
	key := strings.ToLower(chain)
	client, ok := c.evm[key]
	if ok {
		return client, nil
	}

	if _, ok := c.ledgers[key]; ok {
		return nil, fmt.Errorf("%w: %s is not an evm chain", ErrUnsupportedFamily, chain)
	}
	return nil, fmt.Errorf("%w: %s", registry.ErrUnknownChain, chain)
}

func (c *Clients) Ledger(chain string) (settlement.LedgerClient, error) {
	client, ok := c.ledgers[strings.ToLower(chain)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", registry.ErrUnknownChain, chain)
	}
	return client, nil
}
