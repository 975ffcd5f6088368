package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeResourcesLowercasesTrimsAndDedupes(t *testing.T) {
	got := NormalizeResources([]string{" Health ", "health", "Indexes", "indexes", "apps"})
	require.Equal(t, []string{"health", "indexes", "apps"}, got)
}

func TestNormalizeProfilesPreservesCaseTrimsAndDedupes(t *testing.T) {
	got := NormalizeProfiles([]string{" Prod ", "prod", "Prod", "Staging"})
	require.Equal(t, []string{"Prod", "prod", "Staging"}, got)
}

func TestValidateResourcesRejectsUnknown(t *testing.T) {
	err := ValidateResources([]string{"health", "bogus"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bogus")
}

func TestValidateResourcesAcceptsClosedSet(t *testing.T) {
	for r := range validResources {
		require.NoError(t, ValidateResources([]string{r}))
	}
}

func TestValidateProfilesRejectsUnknown(t *testing.T) {
	catalog := map[string]bool{"prod": true, "staging": true}
	err := ValidateProfiles([]string{"prod", "nope"}, catalog)
	require.Error(t, err)
	require.Contains(t, err.Error(), "nope")
}

func TestValidateProfilesAcceptsCatalogMembers(t *testing.T) {
	catalog := map[string]bool{"prod": true}
	require.NoError(t, ValidateProfiles([]string{"prod"}, catalog))
}
