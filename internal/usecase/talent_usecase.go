package usecase

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cv-match-backend/internal/domain"
	"cv-match-backend/internal/talent"
	"cv-match-backend/pkg/apperror"
	"cv-match-backend/pkg/audit"

	"github.com/xuri/excelize/v2"
)

const defaultPageSize = 20

type talentUsecase struct {
	talentRepo    domain.TalentRepository
	auditLog      *audit.Logger
	exportMaxRows int
}

func NewTalentUsecase(talentRepo domain.TalentRepository, auditLog *audit.Logger, exportMaxRows int) domain.TalentUsecase {
	return &talentUsecase{
		talentRepo:    talentRepo,
		auditLog:      auditLog,
		exportMaxRows: exportMaxRows,
	}
}

// Search runs the in-memory filter engine over the full pool and pages
// the result. The pool query is unfiltered on purpose: predicate
// semantics (sentinels, substring matches, skill requirements) live in
// one place instead of being half-replicated in SQL.
func (u *talentUsecase) Search(ctx context.Context, req domain.TalentSearchRequest) (*domain.PaginatedResult[domain.TalentRecord], error) {
	pool, err := u.talentRepo.FetchPool(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	preds := talent.BuildPredicates(req.Filters, req.SearchTerm)
	matched := talent.Apply(pool, preds)

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	total := int64(len(matched))
	totalPages := (len(matched) + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	u.auditLog.LogTalentSearch(userIDFrom(ctx), requestIDFrom(ctx), len(preds), len(matched))

	return &domain.PaginatedResult[domain.TalentRecord]{
		Data:       matched[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// FilterOptions derives the search UI's reference data from the live
// pool, so dropdowns never offer values with zero results
func (u *talentUsecase) FilterOptions(ctx context.Context) (*domain.TalentFilterOptions, error) {
	pool, err := u.talentRepo.FetchPool(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	sectors := map[string]bool{}
	rolesBySector := map[string]map[string]bool{}
	educations := map[string]bool{}
	locations := map[string]bool{}

	for _, rec := range pool {
		if rec.Sector != "" {
			sectors[rec.Sector] = true
			if rolesBySector[rec.Sector] == nil {
				rolesBySector[rec.Sector] = map[string]bool{}
			}
			for _, role := range rec.TargetRoles {
				rolesBySector[rec.Sector][role] = true
			}
		}
		if rec.Education != "" {
			educations[rec.Education] = true
		}
		if rec.Location != "" {
			locations[rec.Location] = true
		}
	}

	options := &domain.TalentFilterOptions{
		Sectors:         sortedKeys(sectors),
		RolesBySector:   map[string][]string{},
		EducationLevels: sortedKeys(educations),
		Locations:       sortedKeys(locations),
		Proficiencies: []string{
			domain.ProficiencyBeginner,
			domain.ProficiencyIntermediate,
			domain.ProficiencyExpert,
		},
	}
	for sector, roles := range rolesBySector {
		options.RolesBySector[sector] = sortedKeys(roles)
	}
	return options, nil
}

// Export runs the same filter pipeline as Search and writes the matched
// rows as a spreadsheet or CSV
func (u *talentUsecase) Export(ctx context.Context, req domain.TalentExportRequest) ([]byte, string, error) {
	columns := req.Columns
	if len(columns) == 0 {
		columns = domain.TalentExportColumns
	}
	validColumns := map[string]bool{}
	for _, col := range domain.TalentExportColumns {
		validColumns[col] = true
	}
	for _, col := range columns {
		if !validColumns[col] {
			return nil, "", apperror.BadRequest(fmt.Sprintf("invalid export column: %s", col))
		}
	}

	pool, err := u.talentRepo.FetchPool(ctx)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	matched := talent.Apply(pool, talent.BuildPredicates(req.Filters, req.SearchTerm))

	if u.exportMaxRows > 0 && len(matched) > u.exportMaxRows {
		matched = matched[:u.exportMaxRows]
	}

	var data []byte
	var filename string
	switch req.Format {
	case "csv":
		data, filename, err = exportCSV(matched, columns)
	case "xlsx", "":
		data, filename, err = exportExcel(matched, columns)
	default:
		return nil, "", apperror.BadRequest(fmt.Sprintf("unsupported export format: %s", req.Format))
	}
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	u.auditLog.LogTalentExport(userIDFrom(ctx), requestIDFrom(ctx), req.Format, len(matched))
	return data, filename, nil
}

// =================================================================================================
// Saved Groups
// =================================================================================================

func (u *talentUsecase) CreateGroup(ctx context.Context, group *domain.TalentGroup) error {
	if strings.TrimSpace(group.Name) == "" {
		return apperror.BadRequest("group name is required")
	}
	if err := u.talentRepo.CreateGroup(ctx, group); err != nil {
		return apperror.Internal(err)
	}
	u.auditLog.Log(audit.Event{
		Event:     audit.EventGroupCreated,
		UserID:    group.RecruiterID,
		RequestID: requestIDFrom(ctx),
		Details:   map[string]interface{}{"group_id": group.ID, "name": group.Name},
	})
	return nil
}

func (u *talentUsecase) ListGroups(ctx context.Context, recruiterID string) ([]domain.TalentGroup, error) {
	groups, err := u.talentRepo.ListGroups(ctx, recruiterID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return groups, nil
}

func (u *talentUsecase) DeleteGroup(ctx context.Context, recruiterID string, id int64) error {
	if err := u.talentRepo.DeleteGroup(ctx, recruiterID, id); err != nil {
		return wrapRepoError(err, "group not found")
	}
	u.auditLog.Log(audit.Event{
		Event:     audit.EventGroupDeleted,
		UserID:    recruiterID,
		RequestID: requestIDFrom(ctx),
		Details:   map[string]interface{}{"group_id": id},
	})
	return nil
}

func (u *talentUsecase) AddGroupMember(ctx context.Context, recruiterID string, groupID int64, talentID string) error {
	if talentID == "" {
		return apperror.BadRequest("talent id is required")
	}
	if err := u.talentRepo.AddGroupMember(ctx, recruiterID, groupID, talentID); err != nil {
		return wrapRepoError(err, "group not found")
	}
	return nil
}

func (u *talentUsecase) RemoveGroupMember(ctx context.Context, recruiterID string, groupID int64, talentID string) error {
	if err := u.talentRepo.RemoveGroupMember(ctx, recruiterID, groupID, talentID); err != nil {
		return wrapRepoError(err, "group member not found")
	}
	return nil
}

// =================================================================================================
// Export writers
// =================================================================================================

var exportHeaderNames = map[string]string{
	"name":                "NAME",
	"sector":              "SECTOR",
	"headline":            "HEADLINE",
	"location":            "LOCATION",
	"top_skills":          "TOP SKILLS",
	"experience_years":    "EXPERIENCE (YEARS)",
	"education":           "EDUCATION",
	"is_verified":         "VERIFIED",
	"target_roles":        "TARGET ROLES",
	"have_license":        "DRIVER'S LICENSE",
	"have_car":            "OWN CAR",
	"availability_status": "AVAILABILITY",
	"certifications":      "CERTIFICATIONS",
}

func exportExcel(records []domain.TalentRecord, columns []string) ([]byte, string, error) {
	f := excelize.NewFile()
	sheetName := "Talent"
	f.SetSheetName("Sheet1", sheetName)

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		header := exportHeaderNames[col]
		if header == "" {
			header = col
		}
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, rec := range records {
		for colIdx, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, exportFieldValue(rec, col))
		}
	}

	for i := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write excel file: %w", err)
	}

	filename := fmt.Sprintf("talent_export_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func exportCSV(records []domain.TalentRecord, columns []string) ([]byte, string, error) {
	var buf bytes.Buffer

	headers := make([]string, 0, len(columns))
	for _, col := range columns {
		header := exportHeaderNames[col]
		if header == "" {
			header = col
		}
		headers = append(headers, csvEscape(header))
	}
	buf.WriteString(strings.Join(headers, ",") + "\n")

	for _, rec := range records {
		values := make([]string, 0, len(columns))
		for _, col := range columns {
			values = append(values, csvEscape(fmt.Sprintf("%v", exportFieldValue(rec, col))))
		}
		buf.WriteString(strings.Join(values, ",") + "\n")
	}

	filename := fmt.Sprintf("talent_export_%s.csv", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

func exportFieldValue(rec domain.TalentRecord, field string) interface{} {
	switch field {
	case "name":
		return rec.Name
	case "sector":
		return rec.Sector
	case "headline":
		return rec.Headline
	case "location":
		return rec.Location
	case "top_skills":
		return strings.Join(rec.TopSkills, "; ")
	case "experience_years":
		return rec.ExperienceYears
	case "education":
		return rec.Education
	case "is_verified":
		return rec.IsVerified
	case "target_roles":
		return strings.Join(rec.TargetRoles, "; ")
	case "have_license":
		return rec.HaveLicense
	case "have_car":
		return rec.HaveCar
	case "availability_status":
		return rec.AvailabilityStatus
	case "certifications":
		return strings.Join(rec.Certifications, "; ")
	}
	return ""
}

func csvEscape(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyUserID).(string)
	return id
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyRequestID).(string)
	return id
}
