// internal/storage/storage.go
package storage

// Keys used by the repositories. Campaign lists are partitioned per
// owner, so CampaignKey takes the owner's lowercased email.
const (
	AccountsKey       = "accounts"
	SessionKey        = "session"
	campaignKeyPrefix = "campaigns:"
)

func CampaignKey(ownerEmail string) string {
	return campaignKeyPrefix + ownerEmail
}

// Storage is the flat key-value store everything persists into. Get
// returns (nil, nil) for a missing key; Delete of a missing key is a
// no-op. Implementations must return a value the caller may keep.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
