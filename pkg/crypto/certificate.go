package crypto

import (
	"fmt"

	"github.com/google/uuid"
)

// NewCertificateID produces a certificate identifier for a credit lot in the
// form CC-<projectID>-<16 hex chars>. The random suffix keeps identifiers
// unique across lots issued for the same project.
func NewCertificateID(projectID uuid.UUID) (string, error) {
	suffix, err := GenerateRandomToken(8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CC-%s-%s", projectID, suffix), nil
}
