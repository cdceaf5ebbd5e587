package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// runs a project through assessment, approval and issuance, returning the
// credit lot id
func issueCredits(t *testing.T, r *gin.Engine, token, projectID string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/"+projectID+"/assessments", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assessment := decodeBody(t, w)["assessment"].(map[string]interface{})
	assessmentID := assessment["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/v1/assessments/"+assessmentID+"/approve", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/v1/assessments/"+assessmentID+"/credits", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["id"].(string)
}

func TestAssessmentToIssuanceFlow(t *testing.T) {
	r := newTestRouter(t)

	token, _ := registerUser(t, r, "owner")
	projectID := registerProject(t, r, token)

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/"+projectID+"/assessments", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assessment := body["assessment"].(map[string]interface{})
	require.Equal(t, "pending", assessment["verificationStatus"])
	// the deterministic estimator: 100 ha of forestry
	require.Equal(t, "864.5", assessment["carbonEstimate"])

	// assessment moved the project along
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/"+projectID, token, nil)
	require.Equal(t, "assessing", decodeBody(t, w)["status"])

	assessmentID := assessment["id"].(string)

	// issuing before approval is rejected
	w = doJSON(t, r, http.MethodPost, "/api/v1/assessments/"+assessmentID+"/credits", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/assessments/"+assessmentID+"/approve", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	approved := decodeBody(t, w)
	require.Equal(t, "approved", approved["verificationStatus"])
	require.NotEmpty(t, approved["reportUrl"])

	w = doJSON(t, r, http.MethodPost, "/api/v1/assessments/"+assessmentID+"/credits", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	lot := decodeBody(t, w)
	require.Equal(t, "available", lot["status"])
	require.Equal(t, "864.5", lot["creditAmount"])
	require.Contains(t, lot["certificateId"], "CC-"+projectID+"-")

	// double issuance is rejected
	w = doJSON(t, r, http.MethodPost, "/api/v1/assessments/"+assessmentID+"/credits", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// issuance verified the project
	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/"+projectID, token, nil)
	require.Equal(t, "verified", decodeBody(t, w)["status"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/projects/"+projectID+"/credits", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lots []interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lots))
	require.Len(t, lots, 1)
}

func TestAssessmentReject(t *testing.T) {
	r := newTestRouter(t)

	token, _ := registerUser(t, r, "owner")
	projectID := registerProject(t, r, token)

	w := doJSON(t, r, http.MethodPost, "/api/v1/projects/"+projectID+"/assessments", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assessmentID := decodeBody(t, w)["assessment"].(map[string]interface{})["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/v1/assessments/"+assessmentID+"/approve", token, gin.H{"status": "rejected"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "rejected", decodeBody(t, w)["verificationStatus"])

	// no credits from a rejected assessment
	w = doJSON(t, r, http.MethodPost, "/api/v1/assessments/"+assessmentID+"/credits", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMarketplacePurchaseFlow(t *testing.T) {
	r := newTestRouter(t)

	sellerToken, _ := registerUser(t, r, "seller")
	buyerToken, _ := registerUser(t, r, "buyer")
	projectID := registerProject(t, r, sellerToken)
	creditID := issueCredits(t, r, sellerToken, projectID)

	// public listing
	w := doJSON(t, r, http.MethodGet, "/api/v1/marketplace/credits", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listings := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, listings, 1)
	listing := listings[0].(map[string]interface{})
	require.Equal(t, "Kijani Forest", listing["projectName"])
	require.Equal(t, "seller", listing["sellerName"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/marketplace/credits/"+creditID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// purchasing requires auth
	w = doJSON(t, r, http.MethodPost, "/api/v1/marketplace/credits/"+creditID+"/purchase", "", gin.H{"amount": "100"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// sellers cannot buy their own lot
	w = doJSON(t, r, http.MethodPost, "/api/v1/marketplace/credits/"+creditID+"/purchase", sellerToken, gin.H{"amount": "100"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// partial purchase splits the lot
	w = doJSON(t, r, http.MethodPost, "/api/v1/marketplace/credits/"+creditID+"/purchase", buyerToken, gin.H{"amount": "300.50"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	result := decodeBody(t, w)
	purchased := result["purchased"].(map[string]interface{})
	remainder := result["remainder"].(map[string]interface{})
	require.Equal(t, "sold", purchased["status"])
	require.Equal(t, "300.5", purchased["creditAmount"])
	require.Equal(t, "available", remainder["status"])
	require.Equal(t, "564", remainder["creditAmount"])
	require.NotEqual(t, purchased["certificateId"], remainder["certificateId"])

	tx := result["transaction"].(map[string]interface{})
	require.Equal(t, "7512.5", tx["totalPrice"])
	require.Equal(t, "completed", tx["status"])

	// only the remainder is still listed
	w = doJSON(t, r, http.MethodGet, "/api/v1/marketplace/credits", "", nil)
	listings = decodeBody(t, w)["data"].([]interface{})
	require.Len(t, listings, 1)
	require.Equal(t, remainder["id"], listings[0].(map[string]interface{})["id"])

	// both parties see the trade
	for _, token := range []string{buyerToken, sellerToken} {
		w = doJSON(t, r, http.MethodGet, "/api/v1/marketplace/transactions", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, decodeBody(t, w)["data"], 1)
	}

	// overbuying the remainder is rejected
	remainderID := remainder["id"].(string)
	w = doJSON(t, r, http.MethodPost, "/api/v1/marketplace/credits/"+remainderID+"/purchase", buyerToken, gin.H{"amount": "564.01"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// bad amounts are rejected
	w = doJSON(t, r, http.MethodPost, "/api/v1/marketplace/credits/"+remainderID+"/purchase", buyerToken, gin.H{"amount": "-1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
