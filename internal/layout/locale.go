package layout

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Key names a localizable string. Keys are stored on generated elements so a
// language switch can re-render them.
type Key string

// Key namespaces. Rendering rules (upper-casing, numbering) hang off these.
const (
	nsTitle   = "title."
	nsLabel   = "label."
	nsDefault = "default."
)

func titleKey(name string) Key { return Key(nsTitle + name) }
func labelKey(name string) Key { return Key(nsLabel + name) }

// defaultKey names the fallback for a scalar company field.
func defaultKey(field string) Key { return Key(nsDefault + field) }

// slotKey names the fallback for one field of one list slot, slots 1-based.
func slotKey(list string, slot int, field string) Key {
	k := nsDefault + list + "." + strconv.Itoa(slot)
	if field != "" {
		k += "." + field
	}
	return Key(k)
}

var (
	English    = language.English
	Indonesian = language.Indonesian

	supported = []language.Tag{English, Indonesian}
	matcher   = language.NewMatcher(supported)
)

// Locale renders dictionary keys in one language.
type Locale struct {
	Tag     language.Tag
	strings map[Key]string
}

// LocaleFor matches lang ("en", "id-ID", "en-US", ...) against the supported
// languages. Anything unrecognized resolves to English.
func LocaleFor(lang string) Locale {
	tag := English
	if t, err := language.Parse(strings.TrimSpace(lang)); err == nil {
		_, idx, conf := matcher.Match(t)
		if conf != language.No {
			tag = supported[idx]
		}
	}
	return localeOf(tag)
}

func localeOf(tag language.Tag) Locale {
	if tag == Indonesian {
		return Locale{Tag: Indonesian, strings: dictID}
	}
	return Locale{Tag: English, strings: dictEN}
}

// Code is the short language code stored on documents.
func (l Locale) Code() string {
	base, _ := l.Tag.Base()
	return base.String()
}

// T returns the raw dictionary text, falling back to English and then to the
// key itself.
func (l Locale) T(k Key) string {
	if s, ok := l.strings[k]; ok {
		return s
	}
	if s, ok := dictEN[k]; ok {
		return s
	}
	return string(k)
}

// Render returns the dictionary text with the presentation rules for k applied.
func (l Locale) Render(k Key) string {
	return l.decorate(k, l.T(k))
}

// decorate applies the per-namespace presentation rules to s. User supplied
// values in the same slot go through it too, so both look alike.
func (l Locale) decorate(k Key, s string) string {
	ks := string(k)
	switch {
	case strings.HasPrefix(ks, nsTitle), strings.HasPrefix(ks, nsDefault+"value."):
		return cases.Upper(l.Tag).String(s)
	case strings.HasPrefix(ks, nsDefault+"service.") && strings.HasSuffix(ks, ".title"):
		parts := strings.Split(ks, ".")
		if n, err := strconv.Atoi(parts[2]); err == nil {
			return fmt.Sprintf("%02d. %s", n, s)
		}
	}
	return s
}

var dictEN = map[Key]string{
	labelKey("company_profile"):    "COMPANY PROFILE",
	labelKey("director_message"):   "MESSAGE FROM THE DIRECTOR",
	labelKey("who_we_are"):         "WHO WE ARE",
	labelKey("compliance"):         "Compliance & Standards",
	labelKey("compliance_body"):    "We adhere to international standards and regulations to ensure the highest quality.",
	labelKey("our_vision"):         "OUR VISION",
	labelKey("our_mission"):        "OUR MISSION",
	labelKey("facilities"):         "Our Facilities",
	labelKey("facilities_caption"): "Data Center Overview",
	labelKey("trusted_partners"):   "Trusted Partners",
	labelKey("get_in_touch"):       "GET IN TOUCH",
	labelKey("website"):            "www.website.com",
	labelKey("about_us"):           "About Us",
	labelKey("vision"):             "Our Vision",
	labelKey("mission"):            "Our Mission",
	labelKey("contact"):            "CONTACT",
	labelKey("vision_short"):       "VISION",
	labelKey("mission_short"):      "MISSION",
	labelKey("the_future"):         "THE FUTURE",
	labelKey("the_path"):           "THE PATH",
	labelKey("overview"):           "OVERVIEW",

	titleKey("foreword"):       "Foreword",
	titleKey("about"):          "About Us",
	titleKey("history"):        "Our History",
	titleKey("legality"):       "Legality & Certification",
	titleKey("strategy"):       "Strategic Direction",
	titleKey("values"):         "Core Values",
	titleKey("services"):       "Our Services",
	titleKey("advantages"):     "Why Choose Us",
	titleKey("infrastructure"): "Infrastructure",
	titleKey("clients"):        "Our Clients",
	titleKey("portfolio"):      "Portfolio",
	titleKey("team"):           "Management Team",

	defaultKey("name"):             "Company Name",
	defaultKey("tagline"):          "Innovating for a better future",
	defaultKey("industry"):         "Professional Services",
	defaultKey("about"):            "We are a leading company dedicated to providing top-tier solutions in our industry. With years of experience and a team of experts, we deliver excellence.",
	defaultKey("vision"):           "To be the global leader in delivering innovative solutions that empower businesses and society.",
	defaultKey("mission"):          "To provide high-quality products and services that exceed customer expectations through continuous improvement.",
	defaultKey("contact"):          "123 Business Rd, Tech City, TC 90210 | info@company.com | www.company.com",
	defaultKey("director_name"):    "Director Name",
	defaultKey("director_role"):    "CEO & Founder",
	defaultKey("director_message"): "\"We are committed to delivering the best solutions for our clients. Our journey has been one of innovation and dedication. We believe in sustainable growth and partnership.\"\n\nThank you for trusting us.",
	defaultKey("infrastructure"):   "Built to support mission-critical operations with redundant systems.",

	slotKey("history", 1, "year"):  "2003",
	slotKey("history", 1, "event"): "Company Inception. Started with 5 employees.",
	slotKey("history", 2, "year"):  "2010",
	slotKey("history", 2, "event"): "National Expansion. Opened 3 branch offices.",
	slotKey("history", 3, "year"):  "2024",
	slotKey("history", 3, "event"): "Global Partnerships established.",

	slotKey("legality", 1, ""): "Business License",
	slotKey("legality", 2, ""): "ISO 9001:2015",
	slotKey("legality", 3, ""): "Industry Cert",

	slotKey("value", 1, ""): "Integrity",
	slotKey("value", 2, ""): "Innovation",
	slotKey("value", 3, ""): "Excellence",
	slotKey("value", 4, ""): "Teamwork",

	slotKey("service", 1, "title"):       "Service Name",
	slotKey("service", 1, "description"): "Comprehensive description of service one. We provide high quality solutions tailored to your needs.",
	slotKey("service", 2, "title"):       "Service Name",
	slotKey("service", 2, "description"): "Comprehensive description of service two. Reliable, fast, and secure.",
	slotKey("service", 3, "title"):       "Service Name",
	slotKey("service", 3, "description"): "Comprehensive description of service three. Advanced technology for modern business.",

	slotKey("advantage", 1, "title"):       "Professional Team",
	slotKey("advantage", 1, "description"): "Certified experts with years of experience.",
	slotKey("advantage", 2, "title"):       "24/7 Support",
	slotKey("advantage", 2, "description"): "Always available to assist you anytime.",
	slotKey("advantage", 3, "title"):       "Latest Technology",
	slotKey("advantage", 3, "description"): "Using the most advanced tools and tech.",
	slotKey("advantage", 4, "title"):       "Competitive Price",
	slotKey("advantage", 4, "description"): "Best value for your investment.",

	slotKey("team", 1, "name"): "Full Name",
	slotKey("team", 1, "role"): "Chief Executive Officer",
	slotKey("team", 2, "name"): "Full Name",
	slotKey("team", 2, "role"): "Chief Technology Officer",

	slotKey("project", 1, "name"):        "Project Name A",
	slotKey("project", 1, "description"): "Description of project A. Successfully implemented.",
	slotKey("project", 2, "name"):        "Project Name B",
	slotKey("project", 2, "description"): "Description of project B. Client satisfaction achieved.",

	slotKey("client", 1, ""): "Client One",
	slotKey("client", 2, ""): "Client Two",
	slotKey("client", 3, ""): "Client Three",
	slotKey("client", 4, ""): "Client Four",
	slotKey("client", 5, ""): "Client Five",
	slotKey("client", 6, ""): "Client Six",
	slotKey("client", 7, ""): "Client Seven",
	slotKey("client", 8, ""): "Client Eight",
}

var dictID = map[Key]string{
	labelKey("company_profile"):    "PROFIL PERUSAHAAN",
	labelKey("director_message"):   "SAMBUTAN DIREKTUR",
	labelKey("who_we_are"):         "SIAPA KAMI",
	labelKey("compliance"):         "Kepatuhan & Standar",
	labelKey("compliance_body"):    "Kami menjunjung standar tata kelola perusahaan dan sertifikasi internasional tertinggi.",
	labelKey("our_vision"):         "VISI KAMI",
	labelKey("our_mission"):        "MISI KAMI",
	labelKey("facilities"):         "Fasilitas Kami",
	labelKey("facilities_caption"): "Gambaran Pusat Data",
	labelKey("trusted_partners"):   "Mitra Terpercaya",
	labelKey("get_in_touch"):       "HUBUNGI KAMI",
	labelKey("website"):            "www.website.com",
	labelKey("about_us"):           "Tentang Kami",
	labelKey("vision"):             "Visi Kami",
	labelKey("mission"):            "Misi Kami",
	labelKey("contact"):            "KONTAK",
	labelKey("vision_short"):       "VISI",
	labelKey("mission_short"):      "MISI",
	labelKey("the_future"):         "MASA DEPAN",
	labelKey("the_path"):           "LANGKAH KAMI",
	labelKey("overview"):           "IKHTISAR",

	titleKey("foreword"):       "Kata Pengantar",
	titleKey("about"):          "Tentang Kami",
	titleKey("history"):        "Sejarah Kami",
	titleKey("legality"):       "Legalitas & Sertifikasi",
	titleKey("strategy"):       "Arah Strategis",
	titleKey("values"):         "Nilai Inti",
	titleKey("services"):       "Layanan Kami",
	titleKey("advantages"):     "Mengapa Memilih Kami",
	titleKey("infrastructure"): "Infrastruktur",
	titleKey("clients"):        "Klien Kami",
	titleKey("portfolio"):      "Portofolio",
	titleKey("team"):           "Tim Manajemen",

	defaultKey("name"):             "Nama Perusahaan",
	defaultKey("tagline"):          "Berinovasi untuk masa depan yang lebih baik",
	defaultKey("industry"):         "Jasa Profesional",
	defaultKey("about"):            "Kami adalah perusahaan berwawasan ke depan yang berdedikasi pada keunggulan dan inovasi. Dengan pengalaman bertahun-tahun di industri, kami menghadirkan solusi terbaik sesuai kebutuhan Anda.",
	defaultKey("vision"):           "Menjadi pemimpin global di industri kami, dikenal karena komitmen terhadap kualitas dan keberlanjutan.",
	defaultKey("mission"):          "Memberikan nilai luar biasa kepada klien melalui solusi inovatif dan layanan yang berdedikasi.",
	defaultKey("contact"):          "Jl. Bisnis No. 123, Kota Teknologi 90210 | info@company.com | www.company.com",
	defaultKey("director_name"):    "Nama Direktur",
	defaultKey("director_role"):    "CEO & Pendiri",
	defaultKey("director_message"): "\"Kami berkomitmen menghadirkan solusi terbaik bagi klien. Perjalanan kami adalah perjalanan inovasi dan dedikasi. Kami percaya pada pertumbuhan berkelanjutan dan kemitraan.\"\n\nTerima kasih atas kepercayaan Anda.",
	defaultKey("infrastructure"):   "Fasilitas modern kami dibangun untuk mendukung operasi penting tanpa henti.",

	slotKey("history", 1, "year"):  "2003",
	slotKey("history", 1, "event"): "Perusahaan berdiri dengan 5 karyawan.",
	slotKey("history", 2, "year"):  "2010",
	slotKey("history", 2, "event"): "Ekspansi nasional. Membuka 3 kantor cabang.",
	slotKey("history", 3, "year"):  "2024",
	slotKey("history", 3, "event"): "Kemitraan global terjalin.",

	slotKey("legality", 1, ""): "Izin Usaha",
	slotKey("legality", 2, ""): "ISO 9001:2015",
	slotKey("legality", 3, ""): "Sertifikat Industri",

	slotKey("value", 1, ""): "Integritas",
	slotKey("value", 2, ""): "Inovasi",
	slotKey("value", 3, ""): "Keunggulan",
	slotKey("value", 4, ""): "Kerja Sama",

	slotKey("service", 1, "title"):       "Nama Layanan",
	slotKey("service", 1, "description"): "Pendampingan ahli untuk merumuskan strategi bisnis dan mempercepat pertumbuhan.",
	slotKey("service", 2, "title"):       "Nama Layanan",
	slotKey("service", 2, "description"): "Penerapan solusi menyeluruh, tepat waktu dan sesuai anggaran.",
	slotKey("service", 3, "title"):       "Nama Layanan",
	slotKey("service", 3, "description"): "Operasional dan pemeliharaan andal agar Anda fokus pada bisnis inti.",

	slotKey("advantage", 1, "title"):       "Tim Profesional",
	slotKey("advantage", 1, "description"): "Tenaga ahli bersertifikat dengan pengalaman luas di industri.",
	slotKey("advantage", 2, "title"):       "Dukungan 24/7",
	slotKey("advantage", 2, "description"): "Bantuan sepanjang waktu kapan pun Anda membutuhkan.",
	slotKey("advantage", 3, "title"):       "Teknologi Terkini",
	slotKey("advantage", 3, "description"): "Perangkat dan platform modern agar Anda selalu terdepan.",
	slotKey("advantage", 4, "title"):       "Harga Bersaing",
	slotKey("advantage", 4, "description"): "Harga transparan dengan nilai nyata.",

	slotKey("team", 1, "name"): "Nama Lengkap",
	slotKey("team", 1, "role"): "Direktur Eksekutif",
	slotKey("team", 2, "name"): "Nama Lengkap",
	slotKey("team", 2, "role"): "Direktur Teknologi",

	slotKey("project", 1, "name"):        "Nama Proyek A",
	slotKey("project", 1, "description"): "Implementasi nasional yang melayani jutaan pengguna.",
	slotKey("project", 2, "name"):        "Nama Proyek B",
	slotKey("project", 2, "description"): "Otomasi yang memangkas biaya operasional hingga sepertiga.",

	slotKey("client", 1, ""): "Klien Satu",
	slotKey("client", 2, ""): "Klien Dua",
	slotKey("client", 3, ""): "Klien Tiga",
	slotKey("client", 4, ""): "Klien Empat",
	slotKey("client", 5, ""): "Klien Lima",
	slotKey("client", 6, ""): "Klien Enam",
	slotKey("client", 7, ""): "Klien Tujuh",
	slotKey("client", 8, ""): "Klien Delapan",
}
