package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"sort"
	"strconv"
	"strings"
	"time"

	"food_bridge/core/api/dto"
	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"
	"food_bridge/core/global"
	"food_bridge/core/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Tên hiển thị khi không resolve được từ hồ sơ hay từ bản ghi.
// Giữ nguyên văn vì dữ liệu xuất ra ngoài hệ thống đối chiếu theo các chuỗi này.
const (
	ReportNameVolunteerFallback = "Volunteer"     // Có volunteerId nhưng không tra được hồ sơ
	ReportNameNotRecorded       = "Not recorded"  // Không có cả id lẫn tên
	ReportNameUnknownStore      = "Unknown store" // Không có tên cửa hàng nào

	reportDefaultPageSize = 30
)

// ====================================
// RESOLVE TÊN, KHỐI LƯỢNG, LOẠI HÀNG
// ====================================

// VolunteerNameLookup tra tên hiển thị theo id hồ sơ tình nguyện viên,
// trả về false khi không tìm thấy hoặc hồ sơ không có tên.
type VolunteerNameLookup func(ctx context.Context, volunteerID primitive.ObjectID) (string, bool)

// VolunteerNameResolver resolve tên tình nguyện viên cho báo cáo, memo hóa
// kết quả tra hồ sơ qua cache: mỗi id chỉ tra một lần trong thời gian sống
// của cache, kể cả khi tra không ra (ghi kết quả rỗng để khỏi tra lại).
type VolunteerNameResolver struct {
	lookup VolunteerNameLookup
	cache  *utility.Cache
}

// NewVolunteerNameResolver tạo resolver với hàm tra cứu và cache tiêm từ ngoài
func NewVolunteerNameResolver(lookup VolunteerNameLookup, cache *utility.Cache) *VolunteerNameResolver {
	return &VolunteerNameResolver{
		lookup: lookup,
		cache:  cache,
	}
}

// lookupMemoized tra tên theo id qua cache; miss thì gọi lookup rồi ghi đè
// kết quả vào cache (kể cả kết quả rỗng)
func (r *VolunteerNameResolver) lookupMemoized(ctx context.Context, volunteerID primitive.ObjectID) string {
	key := volunteerID.Hex()
	if cached, found := r.cache.Get(key); found {
		name, _ := cached.(string)
		return name
	}

	name := ""
	if r.lookup != nil {
		if resolved, ok := r.lookup(ctx, volunteerID); ok {
			name = resolved
		}
	}
	r.cache.Set(key, name)
	return name
}

// Resolve trả tên tình nguyện viên của bản ghi quyên góp theo thứ tự ưu tiên:
//  1. hồ sơ tra theo volunteerId (memo hóa qua cache)
//  2. tên ghi trực tiếp trên bản ghi: volunteerName rồi collectorName
//  3. "Volunteer" khi chỉ có id mà không tra được hồ sơ
//  4. "Not recorded" khi không có gì để bám vào
func (r *VolunteerNameResolver) Resolve(ctx context.Context, donation *models.Donation) string {
	hasID := donation.VolunteerID != nil && !donation.VolunteerID.IsZero()

	if hasID {
		if name := r.lookupMemoized(ctx, *donation.VolunteerID); name != "" {
			return name
		}
	}
	if donation.VolunteerName != "" {
		return donation.VolunteerName
	}
	if donation.VolunteerNameLegacy != "" {
		return donation.VolunteerNameLegacy
	}
	if hasID {
		return ReportNameVolunteerFallback
	}
	return ReportNameNotRecorded
}

// ResolveStoreName trả tên cửa hàng của bản ghi: storeName rồi shopName
// (cách ghi cũ), không có thì "Unknown store".
func ResolveStoreName(donation *models.Donation) string {
	if donation.StoreName != "" {
		return donation.StoreName
	}
	if donation.StoreNameLegacy != "" {
		return donation.StoreNameLegacy
	}
	return ReportNameUnknownStore
}

// ResolveWeight trả khối lượng của bản ghi: ưu tiên totalKg khi dương,
// không thì cộng kg từng dòng hàng (chấp nhận số và chuỗi số, giá trị
// không đọc được tính 0).
func ResolveWeight(donation *models.Donation) float64 {
	if donation.TotalKg > 0 {
		return donation.TotalKg
	}
	_, totalKg := RecomputeTotals(donation.Items)
	return totalKg
}

// DistinctFoodTypes trả danh sách loại thực phẩm không trùng lặp,
// giữ thứ tự xuất hiện đầu tiên trong items.
func DistinctFoodTypes(items []models.DonationItem) []string {
	seen := make(map[string]struct{}, len(items))
	distinct := make([]string, 0, len(items))
	for _, item := range items {
		if item.FoodType == "" {
			continue
		}
		if _, ok := seen[item.FoodType]; ok {
			continue
		}
		seen[item.FoodType] = struct{}{}
		distinct = append(distinct, item.FoodType)
	}
	return distinct
}

// ====================================
// DÒNG BÁO CÁO VÀ BỘ LỌC
// ====================================

// DonationReportRow là một dòng báo cáo đã resolve tên và khối lượng
type DonationReportRow struct {
	ID            primitive.ObjectID `json:"id"`
	Date          int64              `json:"date"`
	StoreName     string             `json:"storeName"`
	VolunteerName string             `json:"volunteerName"`
	FoodTypes     []string           `json:"foodTypes"` // Không trùng lặp, theo thứ tự xuất hiện
	TotalKg       float64            `json:"totalKg"`
	Status        string             `json:"status"`
}

// reportFilter là bộ lọc đã chuẩn hóa: text về lowercase, ngày về khoảng ms trọn ngày
type reportFilter struct {
	volunteer string
	store     string
	foodType  string
	fromMs    int64 // 0 = không chặn phía dưới
	toMs      int64 // 0 = không chặn phía trên
}

// buildReportFilter chuẩn hóa filter từ tầng transport.
// DateFrom tính từ 00:00:00.000, DateTo đến 23:59:59.999 theo múi giờ loc.
func buildReportFilter(f *dto.DonationReportFilter, loc *time.Location) (*reportFilter, error) {
	rf := &reportFilter{
		volunteer: strings.ToLower(f.Volunteer),
		store:     strings.ToLower(f.Store),
		foodType:  strings.ToLower(f.FoodType),
	}

	if f.DateFrom != "" {
		ms, err := utility.ParseDateOnly(f.DateFrom, loc)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		rf.fromMs = ms
	}
	if f.DateTo != "" {
		ms, err := utility.ParseDateOnly(f.DateTo, loc)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		rf.toMs = utility.EndOfDayMilli(ms, loc)
	}

	return rf, nil
}

// matches kiểm tra một dòng báo cáo có qua bộ lọc không.
// Text match theo substring trên tên ĐÃ resolve, không phân biệt hoa thường;
// loại thực phẩm match khi bất kỳ dòng hàng nào chứa chuỗi lọc.
func (rf *reportFilter) matches(row *DonationReportRow) bool {
	if rf.volunteer != "" && !strings.Contains(strings.ToLower(row.VolunteerName), rf.volunteer) {
		return false
	}
	if rf.store != "" && !strings.Contains(strings.ToLower(row.StoreName), rf.store) {
		return false
	}
	if rf.foodType != "" {
		found := false
		for _, ft := range row.FoodTypes {
			if strings.Contains(strings.ToLower(ft), rf.foodType) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if rf.fromMs != 0 && row.Date < rf.fromMs {
		return false
	}
	if rf.toMs != 0 && row.Date > rf.toMs {
		return false
	}
	return true
}

// ====================================
// TỔNG HỢP VÀ XUẤT CSV
// ====================================

// ReportGroup là một nhóm tổng hợp (theo cửa hàng hoặc theo tình nguyện viên)
type ReportGroup struct {
	Name    string  `json:"name"`
	Count   int64   `json:"count"`
	TotalKg float64 `json:"totalKg"`
	AvgKg   float64 `json:"avgKg"` // = TotalKg/Count, 0 khi Count = 0
}

// GroupRows gom các dòng báo cáo theo khóa keyFn, tích lũy count và tổng kg,
// tính trung bình rồi sắp giảm dần theo tổng kg.
func GroupRows(rows []DonationReportRow, keyFn func(*DonationReportRow) string) []ReportGroup {
	index := make(map[string]int)
	groups := make([]ReportGroup, 0)

	for i := range rows {
		key := keyFn(&rows[i])
		j, ok := index[key]
		if !ok {
			j = len(groups)
			index[key] = j
			groups = append(groups, ReportGroup{Name: key})
		}
		groups[j].Count++
		groups[j].TotalKg += rows[i].TotalKg
	}

	for i := range groups {
		if groups[i].Count > 0 {
			groups[i].AvgKg = groups[i].TotalKg / float64(groups[i].Count)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalKg > groups[j].TotalKg
	})

	return groups
}

// BuildCSV xuất các dòng báo cáo thành CSV theo RFC 4180 (encoding/csv
// tự bọc ngoặc kép các giá trị chứa dấu phẩy, ngoặc kép, xuống dòng).
// Cột: ngày dd/MM/yyyy, cửa hàng, tình nguyện viên, các loại thực phẩm
// nối bằng dấu phẩy, tổng kg.
func BuildCSV(rows []DonationReportRow, loc *time.Location) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Date", "Store", "Volunteer", "Food types", "Total kg"}); err != nil {
		return "", err
	}

	for i := range rows {
		record := []string{
			utility.FormatReportDate(rows[i].Date, loc),
			rows[i].StoreName,
			rows[i].VolunteerName,
			strings.Join(rows[i].FoodTypes, ", "),
			strconv.FormatFloat(rows[i].TotalKg, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ====================================
// SERVICE
// ====================================

// ReportCursor là con trỏ trang trả về cho client: (date, id) của document
// cuối cùng trong trang vừa đọc, gửi lại nguyên vẹn để lấy trang kế tiếp.
type ReportCursor struct {
	Date int64  `json:"date"`
	ID   string `json:"id"`
}

// DonationReportPage là một trang báo cáo quyên góp
type DonationReportPage struct {
	Rows       []DonationReportRow `json:"rows"`     // Các dòng qua bộ lọc trong trang này
	PageSize   int                 `json:"pageSize"` // Kích thước trang đã dùng
	NextCursor *ReportCursor       `json:"nextCursor,omitempty"`
	EndOfData  bool                `json:"endOfData"` // Trang đọc được ngắn hơn pageSize
}

// cursorFilter dựng filter MongoDB lấy các document đứng SAU cursor theo
// thứ tự (date desc, _id desc): ngày nhỏ hơn, hoặc cùng ngày và id nhỏ hơn.
// Cursor nil (trang đầu) thì không chặn gì.
func cursorFilter(cursor *dto.ReportCursorInput) interface{} {
	if cursor == nil {
		return bson.D{}
	}
	cursorID := utility.String2ObjectID(cursor.ID)
	return bson.M{
		"$or": []bson.M{
			{"date": bson.M{"$lt": cursor.Date}},
			{"date": cursor.Date, "_id": bson.M{"$lt": cursorID}},
		},
	}
}

// DonationReportSummary là kết quả tổng hợp toàn bộ bản ghi khớp bộ lọc
type DonationReportSummary struct {
	TotalDonations int64         `json:"totalDonations"`
	TotalKg        float64       `json:"totalKg"`
	ByStore        []ReportGroup `json:"byStore"`     // Giảm dần theo tổng kg
	ByVolunteer    []ReportGroup `json:"byVolunteer"` // Giảm dần theo tổng kg
	GeneratedAt    int64         `json:"generatedAt"`
}

// donationFinder đọc bản ghi quyên góp theo filter và options.
// Tách thành func để test trang cursor không cần collection thật.
type donationFinder func(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Donation, error)

// ReportService dựng báo cáo quyên góp: trang theo cursor, tổng hợp và xuất CSV
type ReportService struct {
	findDonations donationFinder
	resolver      *VolunteerNameResolver
	loc           *time.Location
}

// NewReportService tạo mới ReportService.
// Resolver tên tình nguyện viên tra hồ sơ qua VolunteerService và memo hóa
// 10 phút; báo cáo chạy sát nhau dùng lại kết quả tra cũ.
func NewReportService() (*ReportService, error) {
	donationService, err := NewDonationService()
	if err != nil {
		return nil, err
	}

	volunteerService, err := NewVolunteerService()
	if err != nil {
		return nil, err
	}

	lookup := func(ctx context.Context, volunteerID primitive.ObjectID) (string, bool) {
		volunteer, err := volunteerService.FindOneById(ctx, volunteerID)
		if err != nil {
			return "", false
		}
		name := volunteer.DisplayName()
		if name == "" {
			return "", false
		}
		return name, true
	}

	tzName := ""
	if global.MongoDB_ServerConfig != nil {
		tzName = global.MongoDB_ServerConfig.ReportTimezone
	}

	return &ReportService{
		findDonations: donationService.Find,
		resolver:      NewVolunteerNameResolver(lookup, utility.NewCache(10*time.Minute, 30*time.Minute)),
		loc:           utility.LoadLocationOrUTC(tzName),
	}, nil
}

// buildRow resolve một bản ghi quyên góp thành dòng báo cáo
func (s *ReportService) buildRow(ctx context.Context, donation *models.Donation) DonationReportRow {
	return DonationReportRow{
		ID:            donation.ID,
		Date:          donation.Date,
		StoreName:     ResolveStoreName(donation),
		VolunteerName: s.resolver.Resolve(ctx, donation),
		FoodTypes:     DistinctFoodTypes(donation.Items),
		TotalKg:       ResolveWeight(donation),
		Status:        donation.Status,
	}
}

// QueryPage đọc một trang bản ghi quyên góp theo cursor.
//
// Trang đọc từ MongoDB theo thứ tự {date: -1, _id: -1} (id phá hòa các bản
// ghi cùng ngày để trang ổn định), filter áp IN-PROCESS sau khi đọc nên một
// trang có thể trả về ít dòng hơn pageSize dù chưa hết dữ liệu. EndOfData
// suy từ độ dài trang ĐỌC ĐƯỢC (trước khi lọc): trang ngắn hơn pageSize
// nghĩa là hết. Dấu hiệu này gần đúng: khi phần còn lại đúng bằng pageSize,
// trang cuối đầy và client phải gọi thêm một trang rỗng mới biết hết.
func (s *ReportService) QueryPage(ctx context.Context, input *dto.DonationReportQueryInput) (*DonationReportPage, error) {
	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = reportDefaultPageSize
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(pageSize))

	donations, err := s.findDonations(ctx, cursorFilter(input.Cursor), opts)
	if err != nil {
		return nil, err
	}

	rf, err := buildReportFilter(&input.DonationReportFilter, s.loc)
	if err != nil {
		return nil, err
	}

	rows := make([]DonationReportRow, 0, len(donations))
	for i := range donations {
		row := s.buildRow(ctx, &donations[i])
		if rf.matches(&row) {
			rows = append(rows, row)
		}
	}

	page := &DonationReportPage{
		Rows:      rows,
		PageSize:  pageSize,
		EndOfData: len(donations) < pageSize,
	}
	if len(donations) > 0 {
		last := donations[len(donations)-1]
		page.NextCursor = &ReportCursor{Date: last.Date, ID: last.ID.Hex()}
	}

	return page, nil
}

// fetchFilteredRows tải toàn bộ bản ghi quyên góp theo thứ tự báo cáo
// rồi resolve và lọc in-process. Dùng cho tổng hợp và xuất CSV.
func (s *ReportService) fetchFilteredRows(ctx context.Context, f *dto.DonationReportFilter) ([]DonationReportRow, error) {
	rf, err := buildReportFilter(f, s.loc)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})

	donations, err := s.findDonations(ctx, nil, opts)
	if err != nil {
		return nil, err
	}

	rows := make([]DonationReportRow, 0, len(donations))
	for i := range donations {
		row := s.buildRow(ctx, &donations[i])
		if rf.matches(&row) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Summary tổng hợp toàn bộ bản ghi khớp bộ lọc trong một lượt quét:
// nhóm theo cửa hàng và nhóm độc lập theo tình nguyện viên.
func (s *ReportService) Summary(ctx context.Context, input *dto.DonationSummaryQueryInput) (*DonationReportSummary, error) {
	rows, err := s.fetchFilteredRows(ctx, &input.DonationReportFilter)
	if err != nil {
		return nil, err
	}

	summary := &DonationReportSummary{
		TotalDonations: int64(len(rows)),
		ByStore:        GroupRows(rows, func(r *DonationReportRow) string { return r.StoreName }),
		ByVolunteer:    GroupRows(rows, func(r *DonationReportRow) string { return r.VolunteerName }),
		GeneratedAt:    utility.CurrentTimeInMilli(),
	}
	for i := range rows {
		summary.TotalKg += rows[i].TotalKg
	}

	return summary, nil
}

// ExportCSV xuất toàn bộ bản ghi khớp bộ lọc thành chuỗi CSV cho sink bên ngoài.
func (s *ReportService) ExportCSV(ctx context.Context, input *dto.DonationExportInput) (string, error) {
	rows, err := s.fetchFilteredRows(ctx, &input.DonationReportFilter)
	if err != nil {
		return "", err
	}
	return BuildCSV(rows, s.loc)
}
