package registry

// Category keys used across the built-in catalog. Not every outlet offers
// every category; the aggregator simply skips pairs that do not exist.
const (
	CategoryHome          = "home"
	CategoryWorld         = "world"
	CategoryBusiness      = "business"
	CategoryTech          = "tech"
	CategorySports        = "sports"
	CategoryEntertainment = "entertainment"
)

// Builtin returns the built-in catalog of Vietnamese news outlets.
// Order matters: list_news_sources reports sources in this order.
func Builtin() []Source {
	return []Source{
		{
			Key:  "vnexpress",
			Name: "VnExpress",
			Categories: map[string]string{
				CategoryHome:          "https://vnexpress.net/rss/tin-moi-nhat.rss",
				CategoryWorld:         "https://vnexpress.net/rss/the-gioi.rss",
				CategoryBusiness:      "https://vnexpress.net/rss/kinh-doanh.rss",
				CategoryTech:          "https://vnexpress.net/rss/so-hoa.rss",
				CategorySports:        "https://vnexpress.net/rss/the-thao.rss",
				CategoryEntertainment: "https://vnexpress.net/rss/giai-tri.rss",
			},
		},
		{
			Key:  "tuoitre",
			Name: "Tuổi Trẻ",
			Categories: map[string]string{
				CategoryHome:          "https://tuoitre.vn/rss/tin-moi-nhat.rss",
				CategoryWorld:         "https://tuoitre.vn/rss/the-gioi.rss",
				CategoryBusiness:      "https://tuoitre.vn/rss/kinh-doanh.rss",
				CategoryTech:          "https://tuoitre.vn/rss/nhip-song-so.rss",
				CategorySports:        "https://tuoitre.vn/rss/the-thao.rss",
				CategoryEntertainment: "https://tuoitre.vn/rss/giai-tri.rss",
			},
		},
		{
			Key:  "thanhnien",
			Name: "Thanh Niên",
			Categories: map[string]string{
				CategoryHome:          "https://thanhnien.vn/rss/home.rss",
				CategoryWorld:         "https://thanhnien.vn/rss/the-gioi.rss",
				CategoryBusiness:      "https://thanhnien.vn/rss/kinh-te.rss",
				CategoryTech:          "https://thanhnien.vn/rss/cong-nghe.rss",
				CategorySports:        "https://thanhnien.vn/rss/the-thao.rss",
				CategoryEntertainment: "https://thanhnien.vn/rss/giai-tri.rss",
			},
		},
		{
			Key:  "dantri",
			Name: "Dân Trí",
			Categories: map[string]string{
				CategoryHome:          "https://dantri.com.vn/rss/home.rss",
				CategoryWorld:         "https://dantri.com.vn/rss/the-gioi.rss",
				CategoryBusiness:      "https://dantri.com.vn/rss/kinh-doanh.rss",
				CategoryTech:          "https://dantri.com.vn/rss/suc-manh-so.rss",
				CategorySports:        "https://dantri.com.vn/rss/the-thao.rss",
				CategoryEntertainment: "https://dantri.com.vn/rss/giai-tri.rss",
			},
		},
		{
			Key:  "vietnamnet",
			Name: "VietnamNet",
			Categories: map[string]string{
				CategoryHome:          "https://vietnamnet.vn/rss/tin-moi-nhat.rss",
				CategoryWorld:         "https://vietnamnet.vn/rss/the-gioi.rss",
				CategoryBusiness:      "https://vietnamnet.vn/rss/kinh-doanh.rss",
				CategoryTech:          "https://vietnamnet.vn/rss/cong-nghe.rss",
				CategorySports:        "https://vietnamnet.vn/rss/the-thao.rss",
				CategoryEntertainment: "https://vietnamnet.vn/rss/giai-tri.rss",
			},
		},
	}
}
