// Package services - Test resolve tên, tổng hợp và xuất CSV của báo cáo quyên góp.
package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"food_bridge/core/api/dto"
	models "food_bridge/core/api/models/mongodb"
	"food_bridge/core/common"
	"food_bridge/core/utility"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ====================================
// RESOLVE TÊN TÌNH NGUYỆN VIÊN
// ====================================

func newTestResolver(lookup VolunteerNameLookup) *VolunteerNameResolver {
	cache := utility.NewCache(time.Minute, time.Minute)
	return NewVolunteerNameResolver(lookup, cache)
}

func TestVolunteerNameResolver_UuTienHoSo(t *testing.T) {
	volunteerID := primitive.NewObjectID()
	lookup := func(ctx context.Context, id primitive.ObjectID) (string, bool) {
		return "Tên Hồ Sơ", true
	}
	resolver := newTestResolver(lookup)

	donation := &models.Donation{
		VolunteerID:   &volunteerID,
		VolunteerName: "Tên Trên Bản Ghi",
	}

	name := resolver.Resolve(context.Background(), donation)
	assert.Equal(t, "Tên Hồ Sơ", name, "Tên từ hồ sơ phải thắng tên ghi trên bản ghi")
}

func TestVolunteerNameResolver_FallbackTenTrenBanGhi(t *testing.T) {
	volunteerID := primitive.NewObjectID()
	lookup := func(ctx context.Context, id primitive.ObjectID) (string, bool) {
		return "", false // không tra được hồ sơ
	}
	resolver := newTestResolver(lookup)

	donation := &models.Donation{
		VolunteerID:   &volunteerID,
		VolunteerName: "Tên Trên Bản Ghi",
	}
	assert.Equal(t, "Tên Trên Bản Ghi", resolver.Resolve(context.Background(), donation))

	// volunteerName trống thì rơi tiếp xuống cách ghi cũ collectorName
	donation = &models.Donation{
		VolunteerID:         &volunteerID,
		VolunteerNameLegacy: "Tên Cách Ghi Cũ",
	}
	assert.Equal(t, "Tên Cách Ghi Cũ", resolver.Resolve(context.Background(), donation))
}

func TestVolunteerNameResolver_ChiCoID(t *testing.T) {
	volunteerID := primitive.NewObjectID()
	lookup := func(ctx context.Context, id primitive.ObjectID) (string, bool) {
		return "", false
	}
	resolver := newTestResolver(lookup)

	donation := &models.Donation{VolunteerID: &volunteerID}
	assert.Equal(t, ReportNameVolunteerFallback, resolver.Resolve(context.Background(), donation),
		"Có id nhưng không tra được hồ sơ phải trả 'Volunteer'")
}

func TestVolunteerNameResolver_KhongCoGi(t *testing.T) {
	resolver := newTestResolver(nil)

	donation := &models.Donation{}
	assert.Equal(t, ReportNameNotRecorded, resolver.Resolve(context.Background(), donation),
		"Không có id lẫn tên phải trả 'Not recorded'")
}

func TestVolunteerNameResolver_MemoHoa(t *testing.T) {
	volunteerID := primitive.NewObjectID()
	callCount := 0
	lookup := func(ctx context.Context, id primitive.ObjectID) (string, bool) {
		callCount++
		return "Tên Hồ Sơ", true
	}
	resolver := newTestResolver(lookup)

	donation := &models.Donation{VolunteerID: &volunteerID}
	for i := 0; i < 5; i++ {
		resolver.Resolve(context.Background(), donation)
	}

	assert.Equal(t, 1, callCount, "Cùng một id chỉ được tra hồ sơ đúng một lần")
}

func TestVolunteerNameResolver_MemoHoaCaKetQuaRong(t *testing.T) {
	// Tra không ra cũng ghi cache để khỏi tra lại
	volunteerID := primitive.NewObjectID()
	callCount := 0
	lookup := func(ctx context.Context, id primitive.ObjectID) (string, bool) {
		callCount++
		return "", false
	}
	resolver := newTestResolver(lookup)

	donation := &models.Donation{VolunteerID: &volunteerID}
	resolver.Resolve(context.Background(), donation)
	resolver.Resolve(context.Background(), donation)

	assert.Equal(t, 1, callCount, "Kết quả rỗng cũng phải được memo hóa")
}

// ====================================
// RESOLVE CỬA HÀNG, KHỐI LƯỢNG, LOẠI HÀNG
// ====================================

func TestResolveStoreName(t *testing.T) {
	assert.Equal(t, "Cửa hàng A", ResolveStoreName(&models.Donation{StoreName: "Cửa hàng A", StoreNameLegacy: "Shop cũ"}))
	assert.Equal(t, "Shop cũ", ResolveStoreName(&models.Donation{StoreNameLegacy: "Shop cũ"}))
	assert.Equal(t, ReportNameUnknownStore, ResolveStoreName(&models.Donation{}))
}

func TestResolveWeight(t *testing.T) {
	// totalKg dương thì dùng luôn
	donation := &models.Donation{TotalKg: 12.5}
	assert.Equal(t, 12.5, ResolveWeight(donation))

	// totalKg 0 thì cộng lại từ items, chấp nhận chuỗi số
	donation = &models.Donation{
		Items: []models.DonationItem{
			{FoodType: "Gạo", Kg: 3.0},
			{FoodType: "Rau", Kg: "2.5"},
		},
	}
	assert.InDelta(t, 5.5, ResolveWeight(donation), 0.0001)

	assert.Equal(t, 0.0, ResolveWeight(&models.Donation{}))
}

func TestDistinctFoodTypes(t *testing.T) {
	items := []models.DonationItem{
		{FoodType: "Gạo"},
		{FoodType: "Rau củ"},
		{FoodType: "Gạo"},
		{FoodType: ""},
		{FoodType: "Bánh mì"},
	}

	distinct := DistinctFoodTypes(items)
	assert.Equal(t, []string{"Gạo", "Rau củ", "Bánh mì"}, distinct,
		"Loại hàng không trùng lặp, giữ thứ tự xuất hiện đầu tiên, bỏ chuỗi rỗng")
}

// ====================================
// BỘ LỌC BÁO CÁO
// ====================================

func TestBuildReportFilter_NgayHopLe(t *testing.T) {
	f := &dto.DonationReportFilter{DateFrom: "2025-03-15", DateTo: "2025-03-15"}

	rf, err := buildReportFilter(f, time.UTC)
	assert.NoError(t, err)

	dayStart, _ := utility.ParseDateOnly("2025-03-15", time.UTC)
	assert.Equal(t, dayStart, rf.fromMs, "DateFrom tính từ 00:00:00.000")
	assert.Equal(t, dayStart+24*60*60*1000-1, rf.toMs, "DateTo tính đến 23:59:59.999")
}

func TestBuildReportFilter_NgaySai(t *testing.T) {
	f := &dto.DonationReportFilter{DateFrom: "15/03/2025"}

	_, err := buildReportFilter(f, time.UTC)
	assert.Equal(t, common.ErrInvalidFormat, err, "Ngày sai định dạng phải trả ErrInvalidFormat")
}

func TestReportFilter_Matches(t *testing.T) {
	dayStart, _ := utility.ParseDateOnly("2025-03-15", time.UTC)
	row := &DonationReportRow{
		Date:          dayStart + 10*60*60*1000, // 10h sáng cùng ngày
		StoreName:     "Tiệm Bánh Hạnh Phúc",
		VolunteerName: "Nguyễn Văn An",
		FoodTypes:     []string{"Bánh mì", "Bánh ngọt"},
	}

	match := func(f dto.DonationReportFilter) bool {
		rf, err := buildReportFilter(&f, time.UTC)
		if err != nil {
			t.Fatalf("buildReportFilter lỗi: %v", err)
		}
		return rf.matches(row)
	}

	// Text match theo substring, không phân biệt hoa thường
	assert.True(t, match(dto.DonationReportFilter{Volunteer: "văn an"}))
	assert.True(t, match(dto.DonationReportFilter{Store: "HẠNH"}))
	assert.True(t, match(dto.DonationReportFilter{FoodType: "bánh ngọt"}))
	assert.False(t, match(dto.DonationReportFilter{Volunteer: "Trần"}))
	assert.False(t, match(dto.DonationReportFilter{FoodType: "rau"}))

	// Khoảng ngày trọn ngày
	assert.True(t, match(dto.DonationReportFilter{DateFrom: "2025-03-15", DateTo: "2025-03-15"}))
	assert.False(t, match(dto.DonationReportFilter{DateTo: "2025-03-14"}))
	assert.False(t, match(dto.DonationReportFilter{DateFrom: "2025-03-16"}))
}

// ====================================
// TỔNG HỢP VÀ XUẤT CSV
// ====================================

func TestGroupRows(t *testing.T) {
	rows := []DonationReportRow{
		{StoreName: "Cửa hàng A", TotalKg: 10},
		{StoreName: "Cửa hàng B", TotalKg: 30},
		{StoreName: "Cửa hàng A", TotalKg: 20},
	}

	groups := GroupRows(rows, func(r *DonationReportRow) string { return r.StoreName })

	assert.Len(t, groups, 2)

	// Bất biến: tổng count của các nhóm bằng số dòng, tổng kg bằng tổng toàn bộ
	var sumCount int64
	var sumKg float64
	for _, g := range groups {
		sumCount += g.Count
		sumKg += g.TotalKg
	}
	assert.Equal(t, int64(len(rows)), sumCount)
	assert.InDelta(t, 60.0, sumKg, 0.0001)

	// Hai nhóm cùng 30kg: sort ổn định giữ thứ tự xuất hiện, A vào trước
	assert.Equal(t, "Cửa hàng A", groups[0].Name)
	assert.Equal(t, int64(2), groups[0].Count)
	assert.InDelta(t, 30.0, groups[0].TotalKg, 0.0001)
	assert.InDelta(t, 15.0, groups[0].AvgKg, 0.0001, "AvgKg = TotalKg / Count")

	assert.Equal(t, "Cửa hàng B", groups[1].Name)
	assert.InDelta(t, 30.0, groups[1].AvgKg, 0.0001)
}

func TestGroupRows_SapGiamDanTheoTongKg(t *testing.T) {
	rows := []DonationReportRow{
		{VolunteerName: "An", TotalKg: 5},
		{VolunteerName: "Bình", TotalKg: 50},
		{VolunteerName: "Chi", TotalKg: 20},
	}

	groups := GroupRows(rows, func(r *DonationReportRow) string { return r.VolunteerName })

	assert.Equal(t, "Bình", groups[0].Name)
	assert.Equal(t, "Chi", groups[1].Name)
	assert.Equal(t, "An", groups[2].Name)
}

func TestBuildCSV(t *testing.T) {
	dayStart, _ := utility.ParseDateOnly("2025-03-15", time.UTC)
	rows := []DonationReportRow{
		{
			Date:          dayStart,
			StoreName:     `Tiệm "Nhà Mình", quận 3`, // chứa ngoặc kép và dấu phẩy
			VolunteerName: "Nguyễn Văn An",
			FoodTypes:     []string{"Bánh mì", "Rau củ"},
			TotalKg:       12.5,
		},
	}

	csvData, err := BuildCSV(rows, time.UTC)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(csvData), "\n")
	assert.Len(t, lines, 2, "Một dòng header và một dòng dữ liệu")
	assert.Equal(t, "Date,Store,Volunteer,Food types,Total kg", lines[0])

	// Ngày dạng dd/MM/yyyy; giá trị chứa dấu phẩy/ngoặc kép được bọc theo RFC 4180
	assert.Contains(t, lines[1], "15/03/2025")
	assert.Contains(t, lines[1], `"Tiệm ""Nhà Mình"", quận 3"`)
	assert.Contains(t, lines[1], `"Bánh mì, Rau củ"`)
	assert.Contains(t, lines[1], "12.5")
}

func TestBuildCSV_KhongCoDong(t *testing.T) {
	csvData, err := BuildCSV(nil, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, "Date,Store,Volunteer,Food types,Total kg", strings.TrimSpace(csvData),
		"Không có dòng nào vẫn xuất header")
}

// ====================================
// PHÂN TRANG THEO CURSOR
// ====================================

// sortDonationsForReport sắp dataset theo đúng thứ tự đọc trang: date giảm dần,
// cùng ngày thì _id giảm dần.
func sortDonationsForReport(donations []models.Donation) {
	sort.SliceStable(donations, func(i, j int) bool {
		if donations[i].Date != donations[j].Date {
			return donations[i].Date > donations[j].Date
		}
		return donations[i].ID.Hex() > donations[j].ID.Hex()
	})
}

// afterReportCursor trả true khi document đứng sau cursor theo thứ tự
// (date desc, _id desc) — cùng semantics với filter mà cursorFilter dựng.
func afterReportCursor(d *models.Donation, cutDate int64, cutID primitive.ObjectID) bool {
	if d.Date != cutDate {
		return d.Date < cutDate
	}
	return d.ID.Hex() < cutID.Hex()
}

// newPagingReportService dựng ReportService đọc từ dataset trong bộ nhớ,
// áp filter cursor và limit y như collection thật.
func newPagingReportService(dataset []models.Donation) *ReportService {
	find := func(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Donation, error) {
		start := 0
		if m, ok := filter.(bson.M); ok {
			or := m["$or"].([]bson.M)
			cutDate := or[1]["date"].(int64)
			cutID := or[1]["_id"].(bson.M)["$lt"].(primitive.ObjectID)
			for start < len(dataset) && !afterReportCursor(&dataset[start], cutDate, cutID) {
				start++
			}
		}
		end := len(dataset)
		if opts != nil && opts.Limit != nil {
			if limited := start + int(*opts.Limit); limited < end {
				end = limited
			}
		}
		return dataset[start:end], nil
	}

	return &ReportService{
		findDonations: find,
		resolver:      newTestResolver(nil),
		loc:           time.UTC,
	}
}

func makeReportDataset(n int) []models.Donation {
	dayStart, _ := utility.ParseDateOnly("2025-03-01", time.UTC)
	donations := make([]models.Donation, 0, n)
	for i := 0; i < n; i++ {
		donations = append(donations, models.Donation{
			ID:        primitive.NewObjectID(),
			Date:      dayStart + int64(i/2)*24*60*60*1000, // mỗi ngày hai bản ghi, ép tie-break theo _id
			StoreName: "Cửa hàng " + strconv.Itoa(i%3),
			TotalKg:   float64(i + 1),
		})
	}
	sortDonationsForReport(donations)
	return donations
}

// collectAllPages đọc lần lượt các trang cho tới khi EndOfData, trả về toàn bộ id
// đã gặp và số trang đã đọc.
func collectAllPages(t *testing.T, svc *ReportService, pageSize int) ([]string, int) {
	t.Helper()

	var ids []string
	var cursor *dto.ReportCursorInput
	pages := 0
	for {
		page, err := svc.QueryPage(context.Background(), &dto.DonationReportQueryInput{
			PageSize: pageSize,
			Cursor:   cursor,
		})
		assert.NoError(t, err)
		pages++

		for i := range page.Rows {
			ids = append(ids, page.Rows[i].ID.Hex())
		}
		if page.EndOfData {
			return ids, pages
		}
		assert.NotNil(t, page.NextCursor, "Trang chưa hết dữ liệu phải có cursor trang kế")
		cursor = &dto.ReportCursorInput{Date: page.NextCursor.Date, ID: page.NextCursor.ID}
	}
}

func TestQueryPage_GhepCacTrangKhongTrungKhongSot(t *testing.T) {
	dataset := makeReportDataset(7)
	svc := newPagingReportService(dataset)

	ids, pages := collectAllPages(t, svc, 3)

	assert.Equal(t, 3, pages, "7 bản ghi với trang 3: hai trang đầy và một trang ngắn")
	assert.Len(t, ids, len(dataset))

	want := make([]string, 0, len(dataset))
	for i := range dataset {
		want = append(want, dataset[i].ID.Hex())
	}
	assert.Equal(t, want, ids, "Ghép các trang phải ra đúng thứ tự đọc, không trùng, không sót")
}

func TestQueryPage_PhanConLaiDungBangPageSize(t *testing.T) {
	// Dấu hiệu hết dữ liệu là gần đúng: khi phần còn lại đúng bằng pageSize,
	// trang cuối vẫn đầy nên client phải đọc thêm một trang rỗng mới biết hết.
	dataset := makeReportDataset(6)
	svc := newPagingReportService(dataset)

	first, err := svc.QueryPage(context.Background(), &dto.DonationReportQueryInput{PageSize: 3})
	assert.NoError(t, err)
	assert.False(t, first.EndOfData, "Trang đầy không được báo hết")

	second, err := svc.QueryPage(context.Background(), &dto.DonationReportQueryInput{
		PageSize: 3,
		Cursor:   &dto.ReportCursorInput{Date: first.NextCursor.Date, ID: first.NextCursor.ID},
	})
	assert.NoError(t, err)
	assert.False(t, second.EndOfData, "Trang cuối đầy vẫn chưa được báo hết — đây là giới hạn đã chấp nhận của dấu hiệu")

	third, err := svc.QueryPage(context.Background(), &dto.DonationReportQueryInput{
		PageSize: 3,
		Cursor:   &dto.ReportCursorInput{Date: second.NextCursor.Date, ID: second.NextCursor.ID},
	})
	assert.NoError(t, err)
	assert.True(t, third.EndOfData, "Trang rỗng mới báo hết dữ liệu")
	assert.Empty(t, third.Rows)
	assert.Nil(t, third.NextCursor)
}

func TestQueryPage_LocInProcessKhongDoiDauHieuHet(t *testing.T) {
	dataset := makeReportDataset(6)
	svc := newPagingReportService(dataset)

	// Bộ lọc chỉ khớp một phần bản ghi trong trang; EndOfData vẫn suy từ
	// độ dài trang ĐỌC ĐƯỢC trước khi lọc.
	page, err := svc.QueryPage(context.Background(), &dto.DonationReportQueryInput{
		DonationReportFilter: dto.DonationReportFilter{Store: "cửa hàng 1"},
		PageSize:             3,
	})
	assert.NoError(t, err)
	assert.False(t, page.EndOfData)
	assert.Less(t, len(page.Rows), 3, "Trang trả ít dòng hơn pageSize vì lọc in-process")
	for i := range page.Rows {
		assert.Equal(t, "Cửa hàng 1", page.Rows[i].StoreName)
	}
}

func TestQueryPage_PageSizeMacDinh(t *testing.T) {
	svc := newPagingReportService(makeReportDataset(4))

	page, err := svc.QueryPage(context.Background(), &dto.DonationReportQueryInput{})
	assert.NoError(t, err)
	assert.Equal(t, reportDefaultPageSize, page.PageSize)
	assert.True(t, page.EndOfData)
}

func TestCursorFilter(t *testing.T) {
	assert.Equal(t, bson.D{}, cursorFilter(nil), "Trang đầu không chặn gì")

	id := primitive.NewObjectID()
	filter := cursorFilter(&dto.ReportCursorInput{Date: 1000, ID: id.Hex()})

	m, ok := filter.(bson.M)
	assert.True(t, ok)
	or := m["$or"].([]bson.M)
	assert.Equal(t, bson.M{"date": bson.M{"$lt": int64(1000)}}, or[0])
	assert.Equal(t, bson.M{"date": int64(1000), "_id": bson.M{"$lt": id}}, or[1])
}
