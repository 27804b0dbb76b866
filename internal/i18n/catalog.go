package i18n

import (
	"golang.org/x/text/language"

	"github.com/oksasatya/storefront-state/internal/domain/entity"
)

// BaseLanguage is the fallback target during key resolution and the default
// selection when nothing is persisted.
const BaseLanguage = "en"

// Languages is the fixed enumeration of supported languages.
var Languages = []entity.Language{
	{Code: "en", Name: "English", Locale: "en-US"},
	{Code: "id", Name: "Bahasa Indonesia", Locale: "id-ID"},
	{Code: "ar", Name: "العربية", Locale: "ar-SA"},
}

// ByCode returns the language descriptor for code, or the base language when
// the code is unknown.
func ByCode(code string) entity.Language {
	for _, l := range Languages {
		if l.Code == code {
			return l
		}
	}
	return ByCode(BaseLanguage)
}

// DirectionOf returns rtl for Arabic and ltr for everything else.
func DirectionOf(code string) entity.Direction {
	if code == "ar" {
		return entity.DirectionRTL
	}
	return entity.DirectionLTR
}

// TagOf parses the language's BCP 47 locale tag. Unknown codes resolve
// through the base language, so the result is always a usable tag.
func TagOf(code string) language.Tag {
	return language.Make(ByCode(code).Locale)
}

// Catalog maps language code to that language's translation tree. The
// builtin catalog is fully populated at startup and never mutated.
type Catalog map[string]*Node

// Root returns the tree for code, or nil when the language has no tree.
func (c Catalog) Root(code string) *Node {
	return c[code]
}

// Default is the builtin storefront catalog.
var Default = Catalog{
	"en": Tree(map[string]*Node{
		"nav": Tree(map[string]*Node{
			"home":     Leaf("Home"),
			"products": Leaf("Products"),
			"stores":   Leaf("Stores"),
			"cart":     Leaf("Cart"),
			"wishlist": Leaf("Wishlist"),
			"account":  Leaf("My Account"),
		}),
		"cart": Tree(map[string]*Node{
			"title":       Leaf("Shopping Cart"),
			"empty":       Leaf("Your cart is empty"),
			"itemsInCart": Leaf("items in cart"),
			"subtotal":    Leaf("Subtotal"),
			"checkout":    Leaf("Proceed to Checkout"),
			"itemAdded":   Leaf("Added to cart"),
			"itemRemoved": Leaf("Removed from cart"),
		}),
		"wishlist": Tree(map[string]*Node{
			"title":   Leaf("Wishlist"),
			"empty":   Leaf("Your wishlist is empty"),
			"saved":   Leaf("Saved to wishlist"),
			"removed": Leaf("Removed from wishlist"),
		}),
		"auth": Tree(map[string]*Node{
			"login":         Leaf("Sign In"),
			"register":      Leaf("Create Account"),
			"logout":        Leaf("Sign Out"),
			"email":         Leaf("Email"),
			"password":      Leaf("Password"),
			"welcomeBack":   Leaf("Welcome back"),
			"loginFailed":   Leaf("Login failed"),
			"accountExists": Leaf("An account with this email already exists"),
		}),
		"checkout": Tree(map[string]*Node{
			"title":    Leaf("Checkout"),
			"shipping": Leaf("Shipping Address"),
			"payment":  Leaf("Payment"),
			"placed":   Leaf("Order placed"),
		}),
		"common": Tree(map[string]*Node{
			"save":    Leaf("Save"),
			"cancel":  Leaf("Cancel"),
			"loading": Leaf("Loading..."),
			"error":   Leaf("Something went wrong"),
		}),
	}),
	"id": Tree(map[string]*Node{
		"nav": Tree(map[string]*Node{
			"home":     Leaf("Beranda"),
			"products": Leaf("Produk"),
			"stores":   Leaf("Toko"),
			"cart":     Leaf("Keranjang"),
			"wishlist": Leaf("Favorit"),
			"account":  Leaf("Akun Saya"),
		}),
		"cart": Tree(map[string]*Node{
			"title":       Leaf("Keranjang Belanja"),
			"empty":       Leaf("Keranjang Anda kosong"),
			"itemsInCart": Leaf("barang di keranjang"),
			"subtotal":    Leaf("Subtotal"),
			"checkout":    Leaf("Lanjut ke Pembayaran"),
			"itemAdded":   Leaf("Ditambahkan ke keranjang"),
			"itemRemoved": Leaf("Dihapus dari keranjang"),
		}),
		"wishlist": Tree(map[string]*Node{
			"title":   Leaf("Favorit"),
			"empty":   Leaf("Daftar favorit Anda kosong"),
			"saved":   Leaf("Disimpan ke favorit"),
			"removed": Leaf("Dihapus dari favorit"),
		}),
		"auth": Tree(map[string]*Node{
			"login":       Leaf("Masuk"),
			"register":    Leaf("Buat Akun"),
			"logout":      Leaf("Keluar"),
			"email":       Leaf("Email"),
			"password":    Leaf("Kata Sandi"),
			"welcomeBack": Leaf("Selamat datang kembali"),
			"loginFailed": Leaf("Gagal masuk"),
		}),
		"common": Tree(map[string]*Node{
			"save":    Leaf("Simpan"),
			"cancel":  Leaf("Batal"),
			"loading": Leaf("Memuat..."),
			"error":   Leaf("Terjadi kesalahan"),
		}),
	}),
	"ar": Tree(map[string]*Node{
		"nav": Tree(map[string]*Node{
			"home":     Leaf("الرئيسية"),
			"products": Leaf("المنتجات"),
			"stores":   Leaf("المتاجر"),
			"cart":     Leaf("السلة"),
			"wishlist": Leaf("المفضلة"),
			"account":  Leaf("حسابي"),
		}),
		"cart": Tree(map[string]*Node{
			"title":       Leaf("سلة التسوق"),
			"empty":       Leaf("سلتك فارغة"),
			"itemsInCart": Leaf("عناصر في السلة"),
			"subtotal":    Leaf("المجموع الفرعي"),
			"checkout":    Leaf("إتمام الشراء"),
			"itemAdded":   Leaf("أضيف إلى السلة"),
			"itemRemoved": Leaf("حذف من السلة"),
		}),
		"wishlist": Tree(map[string]*Node{
			"title":   Leaf("المفضلة"),
			"empty":   Leaf("قائمتك المفضلة فارغة"),
			"saved":   Leaf("حفظ في المفضلة"),
			"removed": Leaf("حذف من المفضلة"),
		}),
		"auth": Tree(map[string]*Node{
			"login":       Leaf("تسجيل الدخول"),
			"register":    Leaf("إنشاء حساب"),
			"logout":      Leaf("تسجيل الخروج"),
			"email":       Leaf("البريد الإلكتروني"),
			"password":    Leaf("كلمة المرور"),
			"welcomeBack": Leaf("مرحباً بعودتك"),
			"loginFailed": Leaf("فشل تسجيل الدخول"),
		}),
		"common": Tree(map[string]*Node{
			"save":    Leaf("حفظ"),
			"cancel":  Leaf("إلغاء"),
			"loading": Leaf("جارٍ التحميل..."),
			"error":   Leaf("حدث خطأ ما"),
		}),
	}),
}
