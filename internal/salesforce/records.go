package salesforce

import (
	"encoding/json"
	"strings"

	"github.com/Veraticus/contractor-evaluation/internal/model"
)

// projectRecord is the project as the REST resource returns it.
type projectRecord struct {
	ContractorAccount *accountRecord `json:"Contractor_Account__r"`
	ID                string         `json:"Id"`
	Name              string         `json:"Name"`
}

type accountRecord struct {
	Name          string `json:"Name"`
	Phone         string `json:"Phone"`
	BillingStreet string `json:"Account_BillingStreet__c"`
	Description   string `json:"Description"`
}

func (r projectRecord) toModel() *model.ProjectSnapshot {
	snapshot := &model.ProjectSnapshot{
		ID:   r.ID,
		Name: r.Name,
	}
	if r.ContractorAccount != nil {
		snapshot.Contractor = &model.ContractorAccount{
			Name:          r.ContractorAccount.Name,
			Phone:         r.ContractorAccount.Phone,
			BillingStreet: r.ContractorAccount.BillingStreet,
			Description:   r.ContractorAccount.Description,
		}
	}
	return snapshot
}

type submitResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// apiError is one entry of the platform's error response.
type apiError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// decodeAPIError reads an error body, which is either a list of errors or a
// single error object. Unrecognized bodies yield an empty apiError.
func decodeAPIError(body []byte) apiError {
	var list []apiError
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 {
		messages := make([]string, 0, len(list))
		for _, e := range list {
			if e.Message != "" {
				messages = append(messages, e.Message)
			}
		}
		return apiError{
			Message:   strings.Join(messages, "; "),
			ErrorCode: list[0].ErrorCode,
		}
	}

	var single apiError
	if err := json.Unmarshal(body, &single); err == nil {
		return single
	}
	return apiError{}
}

// UnmarshalJSON accepts either a result object or the bare record id that an
// Apex method returning String produces.
func (r *submitResponse) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Success = id != ""
		return nil
	}

	type alias submitResponse
	a := alias(*r)
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = submitResponse(a)
	return nil
}
