package personnelservice

// Employee модель сотрудника из PersonnelService
type Employee struct {
	Code         string `json:"code"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	DepartmentID int64  `json:"departmentId"`
	Active       bool   `json:"active"`
}

// Department модель отдела из PersonnelService
type Department struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	ManagerCode string   `json:"managerCode"`
	MemberCodes []string `json:"memberCodes"`
}

// IsManager проверяет, является ли сотрудник менеджером отдела
func (d *Department) IsManager(employeeCode string) bool {
	return d.ManagerCode == employeeCode
}

// HasMember проверяет, входит ли сотрудник в отдел
func (d *Department) HasMember(employeeCode string) bool {
	for _, code := range d.MemberCodes {
		if code == employeeCode {
			return true
		}
	}
	return false
}
