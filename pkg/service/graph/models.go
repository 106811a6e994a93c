package graph

// Response shapes follow the Graph v1.0 odata envelope:
// https://learn.microsoft.com/en-us/graph/api/resources/user?view=graph-rest-1.0#properties

type userObject struct {
	ID                string `json:"id,omitempty"`
	DisplayName       string `json:"displayName,omitempty"`
	UserPrincipalName string `json:"userPrincipalName,omitempty"`
	Mail              string `json:"mail,omitempty"`
	AccountEnabled    bool   `json:"accountEnabled,omitempty"`
}

type usersPage struct {
	Context  string        `json:"@odata.context"`
	NextLink string        `json:"@odata.nextLink"`
	Users    []*userObject `json:"value,omitempty"`
}

type directoryObject struct {
	Type        string `json:"@odata.type"`
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

type directoryObjectsPage struct {
	Context  string             `json:"@odata.context"`
	NextLink string             `json:"@odata.nextLink"`
	Objects  []*directoryObject `json:"value,omitempty"`
}

type licenseDetail struct {
	SKUID         string `json:"skuId,omitempty"`
	SKUPartNumber string `json:"skuPartNumber,omitempty"`
}

type licenseDetailsPage struct {
	Context  string           `json:"@odata.context"`
	NextLink string           `json:"@odata.nextLink"`
	Licenses []*licenseDetail `json:"value,omitempty"`
}

type assignedLicense struct {
	SKUID string `json:"skuId"`
}

type assignLicenseRequest struct {
	AddLicenses    []assignedLicense `json:"addLicenses"`
	RemoveLicenses []string          `json:"removeLicenses"`
}

type organizationPage struct {
	Context string `json:"@odata.context"`
	Value   []struct {
		ID string `json:"id,omitempty"`
	} `json:"value,omitempty"`
}
