package density

// PlaceStatus is one immutable entry of the static place table.
type PlaceStatus struct {
	Name        string
	Level       Level
	Description string
}

// Per-level guide sentences shared by table entries.
const (
	descLow    = "사람이 몰려있을 가능성이 낮고 붐빔은 거의 느껴지지 않아요. 도보 이동이 자유로워요."
	descMedium = "사람이 어느 정도 몰려있을 수 있어요. 구역에 따라 약간의 붐빔이 느껴질 수 있어요."
	descHigh   = "사람이 많이 몰려 혼잡할 가능성이 높아요. 이동 시 여유 시간을 두는 것이 좋아요."
)

// placeTable holds the known places in their canonical order.
var placeTable = []PlaceStatus{
	{Name: "경복궁", Level: Low, Description: descLow},
	{Name: "덕수궁", Level: Low, Description: descLow},
	{Name: "서울숲", Level: Low, Description: descLow},
	{Name: "뚝섬한강공원", Level: Low, Description: descLow},
	{Name: "북촌한옥마을", Level: Medium, Description: descMedium},
	{Name: "인사동", Level: Medium, Description: descMedium},
	{Name: "동대문디자인플라자", Level: Medium, Description: descMedium},
	{Name: "N서울타워", Level: Medium, Description: descMedium},
	{Name: "명동", Level: High, Description: descHigh},
	{Name: "강남역", Level: High, Description: descHigh},
	{Name: "홍대입구역", Level: High, Description: descHigh},
	{Name: "광장시장", Level: High, Description: descHigh},
}

// byName indexes placeTable. Built once at init, read-only afterwards.
var byName = make(map[string]PlaceStatus, len(placeTable))

func init() {
	for _, p := range placeTable {
		byName[p.Name] = p
	}
}

// Lookup finds the entry for an exact, case-sensitive place name.
func Lookup(name string) (PlaceStatus, bool) {
	p, ok := byName[name]
	return p, ok
}

// Places returns a copy of the table entries in their canonical order.
func Places() []PlaceStatus {
	out := make([]PlaceStatus, len(placeTable))
	copy(out, placeTable)
	return out
}
