package secrets

import (
	"context"
	"fmt"
	"time"

	infraerrors "github.com/angristan/todo-music-api/internal/infra/errors"
	"github.com/hashicorp/vault/api"
)

const vaultService = "vault"

// VaultConfig holds configuration for reading secrets from a KV v2 engine.
type VaultConfig struct {
	Address string
	Token   string
	Mount   string
	Timeout time.Duration
}

// VaultStore reads secrets from a HashiCorp Vault KV v2 mount.
type VaultStore struct {
	client *api.Client
	mount  string
}

func NewVaultStore(cfg VaultConfig) (*VaultStore, error) {
	config := api.DefaultConfig()
	config.Address = cfg.Address
	// failures surface to the caller as-is
	config.MaxRetries = 0

	if cfg.Timeout > 0 {
		config.Timeout = cfg.Timeout
	}

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	mount := cfg.Mount
	if mount == "" {
		mount = "secret"
	}

	return &VaultStore{
		client: client,
		mount:  mount,
	}, nil
}

func (s *VaultStore) Fetch(ctx context.Context, name string) (Secret, error) {
	kv, err := s.client.KVv2(s.mount).Get(ctx, name)
	if err != nil {
		return nil, infraerrors.NewUpstreamError(vaultService, "read "+name, err)
	}
	if kv == nil || kv.Data == nil {
		return nil, infraerrors.NewMalformedResponseError(vaultService, fmt.Sprintf("secret %q has no data", name))
	}

	secret := make(Secret, len(kv.Data))
	for field, value := range kv.Data {
		str, ok := value.(string)
		if !ok {
			return nil, infraerrors.NewMalformedResponseError(
				vaultService,
				fmt.Sprintf("secret %q field %q is %T, want string", name, field, value),
			)
		}
		secret[field] = str
	}

	return secret, nil
}
