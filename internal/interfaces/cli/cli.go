// Package cli es el front-end de terminal: comandos de un disparo sobre los
// casos de uso. Cada comando carga lo que necesita, ejecuta y pinta; no hay
// estado entre invocaciones más allá del token de sesión en disco.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ludwigkubler/WOLF-APP/internal/application/auth"
	"github.com/ludwigkubler/WOLF-APP/internal/application/catalog"
	"github.com/ludwigkubler/WOLF-APP/internal/application/closeout"
	"github.com/ludwigkubler/WOLF-APP/internal/application/inventory"
	"github.com/ludwigkubler/WOLF-APP/internal/application/lots"
	"github.com/ludwigkubler/WOLF-APP/internal/domain"
	"github.com/ludwigkubler/WOLF-APP/internal/infrastructure/exportpdf"
)

// Deps agrupa los casos de uso que consumen los comandos.
type Deps struct {
	Auth      *auth.UseCase
	Catalog   *catalog.Catalog
	Ledger    *lots.Ledger
	Inventory *inventory.Reconciler
	Closeouts *closeout.UseCase
	PDF       *exportpdf.Generator
}

const usage = `uso: wolf <comando> [opciones]

sesión:
  login <usuario> <contraseña>   iniciar sesión
  me                             identidad de la sesión activa
  logout                         cerrar sesión

almacén:
  products      listar productos (filtros: -scope -search -supplier -expiry -sort -dir)
  product-add   alta de producto (manager)
  product-edit  editar producto (manager)
  product-del   eliminar producto (manager)
  inventory     sobrescritura masiva de existencias (manager)
  export        exportar la lista filtrada a PDF

lotes:
  lots <id-producto>   lotes de un producto, caducidad mínima y costo promedio
  lot-add              alta de lote (manager)
  lot-edit             editar lote (manager)
  lot-del              eliminar lote (manager, requiere -yes)
  lot-find <código>    búsqueda global por código de lote

caja:
  closeout-add   registrar cierre de caja (manager)
  closeouts      listar cierres
  closeout <id>  detalle de un cierre`

// Run ejecuta un comando y devuelve el código de salida del proceso.
// args es os.Args[1:]; el primer elemento es el nombre del subcomando.
func Run(ctx context.Context, deps Deps, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}

	// restaura la identidad desde el token guardado para el guardado de rol;
	// los comandos que hablan con el servidor revalidan solos
	if args[0] != "login" {
		deps.Auth.Restore()
	}

	var err error
	switch args[0] {
	case "login":
		err = cmdLogin(ctx, deps, args[1:])
	case "me":
		err = cmdMe(ctx, deps)
	case "logout":
		err = cmdLogout(deps)
	case "products":
		err = cmdProducts(ctx, deps, args[1:])
	case "product-add":
		err = cmdProductAdd(ctx, deps, args[1:])
	case "product-edit":
		err = cmdProductEdit(ctx, deps, args[1:])
	case "product-del":
		err = cmdProductDelete(ctx, deps, args[1:])
	case "inventory":
		err = cmdInventory(ctx, deps, args[1:])
	case "export":
		err = cmdExport(ctx, deps, args[1:])
	case "lots":
		err = cmdLots(ctx, deps, args[1:])
	case "lot-add":
		err = cmdLotAdd(ctx, deps, args[1:])
	case "lot-edit":
		err = cmdLotEdit(ctx, deps, args[1:])
	case "lot-del":
		err = cmdLotDelete(ctx, deps, args[1:])
	case "lot-find":
		err = cmdLotFind(ctx, deps, args[1:])
	case "closeout-add":
		err = cmdCloseoutAdd(ctx, deps, args[1:])
	case "closeouts":
		err = cmdCloseoutList(ctx, deps, args[1:])
	case "closeout":
		err = cmdCloseoutGet(ctx, deps, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido: %s\n\n%s\n", args[0], usage)
		return 2
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, explain(err))
		return 1
	}
	return 0
}

// explain traduce la taxonomía de errores a un mensaje para el operador.
// Nada aborta la vista: el operador corrige y reintenta.
func explain(err error) string {
	var fetch *domain.FetchError
	var persist *domain.PersistError
	var validation *domain.ValidationError
	var permission *domain.PermissionError
	switch {
	case errors.As(err, &fetch):
		if fetch.Detail != "" {
			return "error de lectura: " + fetch.Detail
		}
		return "no se pudo cargar del servidor; reintenta"
	case errors.As(err, &persist):
		if persist.Detail != "" {
			return "error al guardar: " + persist.Detail
		}
		return "no se pudo guardar en el servidor; el borrador sigue intacto, reintenta"
	case errors.As(err, &validation):
		return err.Error()
	case errors.As(err, &permission):
		return "solo los manager pueden hacer esto"
	default:
		return err.Error()
	}
}
